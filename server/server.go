// Package server serves a range's calendar and statistics over HTTP
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/daysleft/internal/calendar"
	"github.com/ayoisaiah/daysleft/internal/config"
	"github.com/ayoisaiah/daysleft/internal/daycolor"
	"github.com/ayoisaiah/daysleft/internal/osutil"
	"github.com/ayoisaiah/daysleft/internal/static"
	"github.com/ayoisaiah/daysleft/internal/stats"
	"github.com/ayoisaiah/daysleft/internal/timeutil"
	"github.com/ayoisaiah/daysleft/internal/tracker"
)

const shutdownTimeout = 5 * time.Second

var weekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

type (
	// TemplateData is what the index page is rendered from.
	TemplateData struct {
		Title    string
		End      string
		TodayHex string
		Stats    stats.Stats
		Years    []yearData
		Weekdays []string
		Fraction float64
	}

	yearData struct {
		Months    []monthData
		Year      int
		Completed bool
	}

	monthData struct {
		Name       string
		Duration   string
		Completion string
		Cells      []cellData
		Year       int
	}

	cellData struct {
		Class string
		Style template.CSS
		Day   int
	}
)

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	if errors.Is(err, errBadInstant) {
		status = http.StatusBadRequest
	}

	slog.Error(
		"request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	http.Error(w, err.Error(), status)
}

// Server renders snapshots of one tracker.
type Server struct {
	cfg     *config.Config
	tracker *tracker.Tracker
	tpl     *template.Template
}

// New prepares a server for the tracker's range.
func New(cfg *config.Config, tr *tracker.Tracker) (*Server, error) {
	tpl, err := static.Template()
	if err != nil {
		return nil, errParseTemplate.Wrap(err)
	}

	return &Server{
		cfg:     cfg,
		tracker: tr,
		tpl:     tpl,
	}, nil
}

// Handler returns the routes served by daysleft.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.Files())))
	mux.Handle("GET /api/snapshot", errorHandler(s.Snapshot))
	mux.Handle("GET /{$}", errorHandler(s.Index))

	return mux
}

// snapshot refreshes at the instant named by the "at" query parameter, or at
// the tracker's clock when it is absent.
func (s *Server) snapshot(r *http.Request) (tracker.Snapshot, error) {
	now := s.tracker.Now()

	if at := r.URL.Query().Get("at"); at != "" {
		t, err := timeutil.FromStr(at, now, s.tracker.Range().Location())
		if err != nil {
			return tracker.Snapshot{}, errBadInstant.Fmt(at).Wrap(err)
		}

		now = t
	}

	return s.tracker.Refresh(now)
}

// Snapshot writes the current snapshot as JSON.
func (s *Server) Snapshot(w http.ResponseWriter, r *http.Request) error {
	snap, err := s.snapshot(r)
	if err != nil {
		return err
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(b)

	return err
}

// Index renders the calendar page.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) error {
	snap, err := s.snapshot(r)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = s.tpl.Execute(&buf, s.templateData(snap))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err = w.Write(buf.Bytes())

	return err
}

func (s *Server) templateData(snap tracker.Snapshot) *TemplateData {
	data := &TemplateData{
		Title:    s.cfg.Range.Title,
		End:      timeutil.Format(snap.Range.End, s.cfg.Display.TwentyFourHour),
		TodayHex: snap.TodayHex(),
		Stats:    snap.Stats,
		Fraction: snap.Stats.Fraction(),
		Weekdays: weekdays,
	}

	for _, y := range snap.Calendar {
		yd := yearData{
			Year:      y.Year,
			Completed: y.Completed(),
		}

		for _, m := range y.Months {
			yd.Months = append(yd.Months, monthData{
				Name:       m.Name(),
				Year:       m.Year,
				Duration:   m.Duration.String(),
				Completion: m.Completion.String(),
				Cells:      cells(m, snap),
			})
		}

		data.Years = append(data.Years, yd)
	}

	return data
}

// cells lays out the counted days of m in a Monday-first grid, leading with
// blank cells.
func cells(m calendar.Month, snap tracker.Snapshot) []cellData {
	out := make([]cellData, 0, 42)

	for range m.GridPadding() {
		out = append(out, cellData{Class: "pad"})
	}

	first := m.FirstCountedDay()
	for day := first; day < first+m.CountedDays(); day++ {
		c := cellData{Day: day, Class: "day remaining"}

		if m.DayState(day) == calendar.DayElapsed {
			c.Class = "day elapsed"
		}

		if m.Current() && day == snap.At.Day() {
			c.Class = "day today"
			c.Style = todayStyle(snap.Today, daycolor.DayFraction(snap.At))
		}

		out = append(out, c)
	}

	return out
}

// todayStyle fills the current day's cell from the left by the share of the
// day already gone.
func todayStyle(c daycolor.Color, fraction float64) template.CSS {
	pct := fraction * 100

	return template.CSS(fmt.Sprintf(
		"background: linear-gradient(to right, %s %.1f%%, transparent %.1f%%); color: %s",
		c.Hex(),
		pct,
		pct,
		c.Foreground().Hex(),
	))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, open bool) error {
	addr := fmt.Sprintf("localhost:%d", s.cfg.Server.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	url := "http://" + addr

	pterm.Info.Printfln("serving %s on %s", s.cfg.Range.Title, url)
	slog.Info("server started", slog.String("addr", addr))

	if open {
		if err := openbrowser(url); err != nil {
			pterm.Warning.Printfln("unable to open browser: %v", err)
		}
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return errServe.Wrap(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("server shutting down")

	return srv.Shutdown(shutdownCtx)
}

func openbrowser(url string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case osutil.Windows:
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).
			Start()
	case osutil.Darwin:
		return exec.Command("open", url).Start()
	default:
		return errUnsupportedPlatform.Fmt(runtime.GOOS)
	}
}
