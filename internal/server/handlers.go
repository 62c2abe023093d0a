package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/chartlabel/pkg/buildinfo"
	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/errors"
	chartio "github.com/matzehuels/chartlabel/pkg/io"
	"github.com/matzehuels/chartlabel/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	c, opts, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus(result.CacheInfo.RenderHit))
	w.Header().Set("X-Labels", strconv.Itoa(result.Stats.Labels))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	c, opts, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, err := s.runner.Layout(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := l.JSON(opts.Theme)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[pipeline.FormatJSON])
	w.Header().Set("X-Labels", strconv.Itoa(l.Count()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// parseRequest decodes the chart document in the body and builds pipeline
// options from the query string.
func (s *Server) parseRequest(r *http.Request) (*chart.Chart, pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Theme:      q.Get("theme"),
		Background: q.Get("background"),
		Label:      s.label,
	}
	if opts.Theme == "" {
		opts.Theme = pipeline.DefaultTheme
	}

	var err error
	if opts.Width, err = floatParam(q.Get("width"), "width"); err != nil {
		return nil, opts, err
	}
	if opts.Height, err = floatParam(q.Get("height"), "height"); err != nil {
		return nil, opts, err
	}
	if opts.Scale, err = floatParam(q.Get("scale"), "scale"); err != nil {
		return nil, opts, err
	}
	if v := q.Get("refresh"); v != "" {
		if opts.Refresh, err = strconv.ParseBool(v); err != nil {
			return nil, opts, errors.New(errors.ErrCodeInvalidInput, "refresh must be a boolean, got %q", v)
		}
	}

	if opts.Palette, err = s.palettes(opts.Theme); err != nil {
		return nil, opts, err
	}

	doc, err := s.readDocument(r)
	if err != nil {
		return nil, opts, err
	}
	c, err := doc.Chart(q.Get("chart"))
	if err != nil {
		return nil, opts, err
	}
	return c, opts, nil
}

func (s *Server) readDocument(r *http.Request) (*chartio.Document, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errTooLarge
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	return chartio.Read(bytes.NewReader(body), documentFormat(r.Header.Get("Content-Type")))
}

var errTooLarge = errors.New(errors.ErrCodeInvalidInput, "request body too large")

func documentFormat(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "json"
	}
	if strings.Contains(mt, "yaml") {
		return "yaml"
	}
	return "json"
}

func floatParam(v, name string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, v)
	}
	return f, nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if stderrors.Is(err, context.DeadlineExceeded) {
		err = errors.Wrap(errors.ErrCodeTimeout, err, "request timed out")
	}
	status := errors.HTTPStatus(err)
	if err == errTooLarge {
		status = http.StatusRequestEntityTooLarge
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: errors.UserMessage(err)}})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}
