// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xlhttp

import (
	"fmt"
	"net/http"
	"strconv"

	"cloudeng.io/xldt"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New()

type handlers struct {
	opts Options
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

type dateRequest struct {
	Year  string `validate:"required,numeric"`
	Month string `validate:"required,numeric"`
	Day   string `validate:"required,numeric"`
}

type timeRequest struct {
	Hour   string `validate:"required,numeric"`
	Minute string `validate:"omitempty,numeric"`
	Second string `validate:"omitempty,numeric"`
}

type valueRequest struct {
	Value      string `validate:"required,numeric"`
	ReturnType string `validate:"omitempty,numeric"`
}

type diffRequest struct {
	Start string `validate:"required,numeric"`
	End   string `validate:"required,numeric"`
}

type weekendRequest struct {
	Value   string `validate:"required,numeric"`
	Weekend string `validate:"omitempty,max=7"`
}

// DateResponse is returned by /v1/date.
type DateResponse struct {
	Serial xldt.Serial `json:"serial"`
	Date   string      `json:"date"`
}

// PartsResponse is returned by /v1/parts.
type PartsResponse struct {
	Value  float64     `json:"value"`
	Serial xldt.Serial `json:"serial"`
	Date   string      `json:"date"`
	Year   int         `json:"year"`
	Month  int         `json:"month"`
	Day    int         `json:"day"`
	Hour   int         `json:"hour"`
	Minute int         `json:"minute"`
	Second int         `json:"second"`
	Time   string      `json:"time"`
}

// TimeResponse is returned by /v1/time.
type TimeResponse struct {
	Fraction float64 `json:"fraction"`
	Time     string  `json:"time"`
}

// WeekdayResponse is returned by /v1/weekday.
type WeekdayResponse struct {
	Serial     xldt.Serial `json:"serial"`
	ReturnType int         `json:"return_type"`
	Weekday    int         `json:"weekday"`
	Name       string      `json:"name"`
}

// WeekResponse is returned by /v1/week and /v1/isoweek.
type WeekResponse struct {
	Serial     xldt.Serial `json:"serial"`
	ReturnType int         `json:"return_type"`
	Week       int         `json:"week"`
}

// DiffResponse is returned by /v1/diff.
type DiffResponse struct {
	Start  xldt.Serial `json:"start"`
	End    xldt.Serial `json:"end"`
	Years  int         `json:"years"`
	Months int         `json:"months"`
	Days   int         `json:"days"`
}

// WeekendResponse is returned by /v1/weekend.
type WeekendResponse struct {
	Serial    xldt.Serial `json:"serial"`
	Weekend   string      `json:"weekend"`
	IsWeekend bool        `json:"is_weekend"`
}

func atoi(name, val string) (int, error) {
	if len(val) == 0 {
		return 0, nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%v: %q is not an integer", name, val)
	}
	return v, nil
}

func atof(name, val string) (float64, error) {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%v: %q is not a number", name, val)
	}
	return v, nil
}

func returnType(val string, def xldt.ReturnType) (xldt.ReturnType, error) {
	if len(val) == 0 {
		return def, nil
	}
	rt, err := atoi("type", val)
	return xldt.ReturnType(rt), err
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) date(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := dateRequest{Year: q.Get("year"), Month: q.Get("month"), Day: q.Get("day")}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}
	var ymd [3]int
	for i, p := range []struct{ name, val string }{
		{"year", req.Year}, {"month", req.Month}, {"day", req.Day},
	} {
		v, err := atoi(p.name, p.val)
		if err != nil {
			writeError(w, err)
			return
		}
		ymd[i] = v
	}
	s, err := xldt.Date(ymd[0], ymd[1], ymd[2])
	if err != nil {
		writeError(w, err)
		return
	}
	cd, err := xldt.CivilDate(s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DateResponse{Serial: s, Date: cd.String()})
}

func (h *handlers) parts(w http.ResponseWriter, r *http.Request) {
	req := valueRequest{Value: r.URL.Query().Get("value")}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}
	v, err := atof("value", req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	s, frac, err := xldt.Split(v)
	if err != nil {
		writeError(w, err)
		return
	}
	cd, err := xldt.CivilDate(s)
	if err != nil {
		writeError(w, err)
		return
	}
	tod, err := xldt.TimeOfDayFromFraction(frac)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PartsResponse{
		Value:  v,
		Serial: s,
		Date:   cd.String(),
		Year:   cd.Year,
		Month:  int(cd.Month),
		Day:    cd.Day,
		Hour:   tod.Hour(),
		Minute: tod.Minute(),
		Second: tod.Second(),
		Time:   tod.String(),
	})
}

func (h *handlers) timeOfDay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := timeRequest{Hour: q.Get("hour"), Minute: q.Get("minute"), Second: q.Get("second")}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}
	var hms [3]int
	for i, p := range []struct{ name, val string }{
		{"hour", req.Hour}, {"minute", req.Minute}, {"second", req.Second},
	} {
		v, err := atoi(p.name, p.val)
		if err != nil {
			writeError(w, err)
			return
		}
		hms[i] = v
	}
	f := xldt.Time(hms[0], hms[1], hms[2])
	tod, err := xldt.TimeOfDayFromFraction(f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TimeResponse{Fraction: f, Time: tod.String()})
}

func (h *handlers) serialAndType(r *http.Request, def xldt.ReturnType) (xldt.Serial, xldt.ReturnType, error) {
	q := r.URL.Query()
	req := valueRequest{Value: q.Get("value"), ReturnType: q.Get("type")}
	if err := validate.Struct(req); err != nil {
		return 0, 0, err
	}
	v, err := atof("value", req.Value)
	if err != nil {
		return 0, 0, err
	}
	s, err := xldt.SerialOf(v)
	if err != nil {
		return 0, 0, err
	}
	rt, err := returnType(req.ReturnType, def)
	return s, rt, err
}

func (h *handlers) weekday(w http.ResponseWriter, r *http.Request) {
	s, rt, err := h.serialAndType(r, h.opts.WeekdayType)
	if err != nil {
		writeError(w, err)
		return
	}
	wd, err := xldt.Weekday(s, rt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, WeekdayResponse{
		Serial:     s,
		ReturnType: int(rt),
		Weekday:    wd,
		Name:       xldt.DayOfWeek(s).String(),
	})
}

func (h *handlers) week(w http.ResponseWriter, r *http.Request) {
	s, rt, err := h.serialAndType(r, h.opts.WeekType)
	if err != nil {
		writeError(w, err)
		return
	}
	wk, err := xldt.Week(s, rt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, WeekResponse{Serial: s, ReturnType: int(rt), Week: wk})
}

func (h *handlers) isoweek(w http.ResponseWriter, r *http.Request) {
	s, _, err := h.serialAndType(r, xldt.ISO)
	if err != nil {
		writeError(w, err)
		return
	}
	wk, err := xldt.ISOWeek(s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, WeekResponse{Serial: s, ReturnType: int(xldt.ISO), Week: wk})
}

func (h *handlers) diff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := diffRequest{Start: q.Get("start"), End: q.Get("end")}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}
	var serials [2]xldt.Serial
	for i, p := range []struct{ name, val string }{
		{"start", req.Start}, {"end", req.End},
	} {
		v, err := atof(p.name, p.val)
		if err != nil {
			writeError(w, err)
			return
		}
		if serials[i], err = xldt.SerialOf(v); err != nil {
			writeError(w, err)
			return
		}
	}
	start, end := serials[0], serials[1]
	years, err := xldt.Years(start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	months, err := xldt.Months(start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DiffResponse{
		Start:  start,
		End:    end,
		Years:  years,
		Months: months,
		Days:   xldt.Days(start, end),
	})
}

func (h *handlers) weekend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := weekendRequest{Value: q.Get("value"), Weekend: q.Get("weekend")}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}
	v, err := atof("value", req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	s, err := xldt.SerialOf(v)
	if err != nil {
		writeError(w, err)
		return
	}
	mask := h.opts.Weekend
	if len(req.Weekend) > 0 {
		if mask, err = xldt.ParseWeekend(req.Weekend); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, WeekendResponse{
		Serial:    s,
		Weekend:   mask.String(),
		IsWeekend: xldt.IsWeekend(s, mask),
	})
}
