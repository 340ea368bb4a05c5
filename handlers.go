package mrt

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Helhest/mrt/formatter"
	"github.com/Helhest/mrt/routing"
)

// ErrorResponse is the JSON body of a failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Station string `json:"station,omitempty"`
}

type healthResponse struct {
	Health  string `json:"status"`
	Network Status `json:"network"`
}

// StationResponse is one entry of GET /api/stations
type StationResponse struct {
	Code      string  `json:"code"`
	Line      string  `json:"line"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleHealth reports "degraded" when the build dropped codes
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.router.Status()
	resp := healthResponse{Health: "ok", Network: st}
	if !st.Complete {
		resp.Health = "degraded"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	g, _ := s.router.Snapshot()
	line := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("line")))
	out := make([]StationResponse, 0, g.NodeCount())
	for _, l := range g.Lines() {
		if line != "" && l.ID != line {
			continue
		}
		for _, stop := range l.Stops {
			c, _ := g.Coordinate(stop.Raw)
			out = append(out, StationResponse{
				Code:      stop.Raw,
				Line:      l.ID,
				Name:      g.StationName(stop.Raw),
				Latitude:  c.Latitude,
				Longitude: c.Longitude,
			})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	g, _ := s.router.Snapshot()
	writeJSON(w, http.StatusOK, g.Lines())
}

func (s *Server) handleShortest(w http.ResponseWriter, r *http.Request) {
	s.handleSingle(w, r, s.router.Shortest)
}

func (s *Server) handleFastest(w http.ResponseWriter, r *http.Request) {
	s.handleSingle(w, r, s.router.Fastest)
}

func (s *Server) handleSingle(w http.ResponseWriter, r *http.Request, query func(from, to string) routing.Result) {
	from, to, ok := endpoints(w, r)
	if !ok {
		return
	}
	res := query(from, to)
	if res.Status == routing.StatusUnknownStation {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "unknown station", Station: res.Unknown})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleRoute runs both queries and renders them in the requested format
// (json by default).
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from, to, ok := endpoints(w, r)
	if !ok {
		return
	}
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = formatter.FormatJSON
	}

	pair := s.router.Route(from, to)
	short, fast := pair.Shortest, pair.Fastest
	resp := formatter.NewRouteResponse(pair.Graph, &short, &fast)
	resp.NetworkVersion = pair.Version

	body, err := formatter.NewResponseBuilder().Build(resp, format)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	status := http.StatusOK
	if short.Status == routing.StatusUnknownStation {
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", formatter.ContentType(format))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func endpoints(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from and to are required"})
		return "", "", false
	}
	return from, to, true
}
