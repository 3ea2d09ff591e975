package widget

import (
	"errors"
	"fmt"

	"github.com/five82/mosdash/internal/fetch"
)

// NotAvailable stands in for a value that could not be fetched.
const NotAvailable = "N/A"

const (
	timeLinePrefix        = "Текущее время по Москве: "
	temperatureLinePrefix = "Текущая температура в Москве: "
	clicksLinePrefix      = "Количество нажатий: "

	msgMissingTemperature = "Ошибка: данные температуры отсутствуют."
	msgKeysExhausted      = "Ошибка: Все API ключи не сработали."
)

// TimeText renders a time result: the clock, N/A when the payload lacked a
// timestamp, or the error text in place of the time.
func TimeText(res fetch.Result) string {
	if res.OK() {
		return res.Value
	}
	var se *fetch.StatusError
	switch {
	case errors.Is(res.Err, fetch.ErrMissingData):
		return NotAvailable
	case errors.As(res.Err, &se):
		return "Ошибка: " + se.Status()
	default:
		return res.Err.Error()
	}
}

// TemperatureText renders a temperature result as the value line and a
// separate error line. On failure the value is N/A; the two never mix.
func TemperatureText(res fetch.Result) (text, errorText string) {
	if res.OK() {
		return res.Value + "°C", ""
	}
	switch {
	case errors.Is(res.Err, fetch.ErrMissingData):
		return NotAvailable, msgMissingTemperature
	case errors.Is(res.Err, fetch.ErrKeysExhausted):
		return NotAvailable, msgKeysExhausted
	case fetch.IsTransport(res.Err):
		return NotAvailable, "Ошибка запроса: " + res.Err.Error()
	default:
		return NotAvailable, "Ошибка: " + res.Err.Error()
	}
}

// TimeLine is the full time caption.
func TimeLine(text string) string { return timeLinePrefix + text }

// TemperatureLine is the full temperature caption.
func TemperatureLine(text string) string { return temperatureLinePrefix + text }

// ClicksLine is the click counter caption.
func ClicksLine(n int) string { return fmt.Sprintf("%s%d", clicksLinePrefix, n) }
