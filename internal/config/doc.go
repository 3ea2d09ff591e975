// Package config loads the mosdash TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/mosdash/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	time_url    = "http://worldtimeapi.org"
//	time_zone   = "Europe/Moscow"
//	weather_url = "http://api.openweathermap.org"
//	city_id     = "524901"
//	api_keys    = ["key-one", "key-two", "key-three"]
//	log_file    = "~/.local/state/mosdash/mosdash.log"
//
// Every field is optional. Blank api_keys entries are dropped. Setting
// log_file to an empty string turns logging off.
//
// Polling intervals are fixed (5s for the clock, 2m for the temperature) and
// intentionally not configurable.
package config
