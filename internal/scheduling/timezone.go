package scheduling

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// LocalLayout формат момента времени в зоне с явным смещением.
// Смещение в строке делает преобразование обратимым даже в час перевода часов
const LocalLayout = "2006-01-02T15:04:05.999999999Z07:00"

// ErrUnknownTimezone возвращается, когда зону не удалось распознать
var ErrUnknownTimezone = errors.New("scheduling: unknown timezone")

var fixedOffsetPattern = regexp.MustCompile(`^(?i)(?:UTC|GMT)?\s*([+-])(\d{1,2})(?::?(\d{2}))?$`)

// NormalizeTimezone приводит настроенную специалистом зону к *time.Location.
// Поддерживаются IANA имена, UTC/GMT/Z в любом регистре и фиксированные смещения
// ("+02:00", "UTC+2", "GMT-05:30"). Для нераспознанной зоны возвращается UTC и ошибка
func NormalizeTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)

	switch strings.ToUpper(name) {
	case "", "UTC", "GMT", "Z", "ETC/UTC", "ETC/GMT":
		return time.UTC, nil
	}

	if loc, err := time.LoadLocation(name); err == nil {
		return loc, nil
	}

	if m := fixedOffsetPattern.FindStringSubmatch(name); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours <= 14 && minutes < 60 {
			offset := hours*3600 + minutes*60
			if m[1] == "-" {
				offset = -offset
			}
			if offset == 0 {
				return time.UTC, nil
			}
			return time.FixedZone(fmt.Sprintf("UTC%s%02d:%02d", m[1], hours, minutes), offset), nil
		}
	}

	return time.UTC, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
}

// ToInstant интерпретирует показания часов local (дата и время без учета его зоны) в зоне loc
// и возвращает момент в UTC
func ToInstant(local time.Time, loc *time.Location) time.Time {
	y, mo, d := local.Date()
	h, mi, s := local.Clock()
	return time.Date(y, mo, d, h, mi, s, local.Nanosecond(), loc).UTC()
}

// FormatIn форматирует момент времени в зоне loc
func FormatIn(instant time.Time, loc *time.Location, layout string) string {
	return instant.In(loc).Format(layout)
}

// ParseIn парсит строку в зоне loc и возвращает момент в UTC.
// Если строка содержит смещение, оно имеет приоритет над loc
func ParseIn(value, layout string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// isUTCMidnight проверяет, что момент приходится ровно на полночь UTC
func isUTCMidnight(t time.Time) bool {
	u := t.UTC()
	return u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}

// effectiveEnd возвращает конец интервала с поправкой на полночь UTC.
// Внешний сервис записывает блокировку по дату включительно как конец в полночь UTC.
// Если эта полночь в зоне специалиста попадает на оцениваемую дату, интервал
// продлевается до начала следующего локального дня, иначе день блокировки
// при переводе зоны обрезается до нулевой длины
func effectiveEnd(r domain.BlockedRange, date types.Date, loc *time.Location) time.Time {
	if isUTCMidnight(r.End) && types.DateIn(r.End, loc) == date {
		return date.AddDays(1).In(loc)
	}
	return r.End
}
