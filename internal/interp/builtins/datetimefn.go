package builtins

import (
	"time"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerDateTime wires الوقت_الآن (now) and نسق_تاريخ (format-date) on
// stdlib time — the teacher's own internal/interp/builtins_datetime*.go is
// itself time-based and there is no third-party date/time package
// anywhere in the example pack to adopt instead.
func registerDateTime(dst map[string]*runtime.Builtin) {
	register(dst, []entry{
		{"الوقت_الآن", CategoryDateTime, biNow},
		{"نسق_تاريخ", CategoryDateTime, biFormatDate},
	})
}

func biNow(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 0 {
		return nil, errWrongArity("الوقت_الآن", 0, len(args))
	}
	return runtime.IntNumber(time.Now().Unix()), nil
}

// biFormatDate formats a Unix-seconds timestamp using a layout string
// understood by time.Layout (e.g. "2006-01-02 15:04:05").
func biFormatDate(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errWrongArity("نسق_تاريخ", 2, len(args))
	}
	ts, err := asNumber("نسق_تاريخ", args[0])
	if err != nil {
		return nil, err
	}
	layout, err := asText("نسق_تاريخ", args[1])
	if err != nil {
		return nil, err
	}
	return runtime.Text(time.Unix(ts.Int, 0).UTC().Format(string(layout))), nil
}
