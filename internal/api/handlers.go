package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jorge-barreto/cex/internal/cex"
)

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"id":        s.doc.ID,
		"source":    s.doc.Source,
		"loaded_at": s.doc.LoadedAt,
		"labels":    s.doc.Store.Len(),
	})
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	st := s.doc.Store
	labels := make([]map[string]any, 0, st.Len())
	for _, l := range st.Labels() {
		labels = append(labels, map[string]any{
			"label":  l,
			"blocks": len(st.Bodies(l)),
		})
	}
	writeJSON(w, map[string]any{"labels": labels})
}

func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	label := urlParam(r, "label")
	writeJSON(w, map[string]any{
		"label":  label,
		"bodies": s.doc.Store.Bodies(label),
	})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	label := urlParam(r, "label")
	includeHeader, err := boolParam(r, "header", true)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp := map[string]any{
		"label": label,
		"data":  s.doc.Store.DelimitedData(label, includeHeader),
	}
	if r.URL.Query().Get("view") == "rows" {
		tables := s.doc.Store.Tables(label)
		if tables == nil {
			tables = []cex.Table{}
		}
		resp["tables"] = tables
	}
	writeJSON(w, resp)
}

func (s *Server) handleValues(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := cex.ColumnQuery{
		Label:       urlParam(r, "label"),
		ValueColumn: q.Get("column"),
		KeyColumn:   q.Get("key"),
		KeyValue:    q.Get("value"),
	}
	if query.ValueColumn == "" {
		jsonError(w, "column query parameter is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"values": s.doc.Store.UniqueColumnValues(query)})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	dm := s.cfg.DataModels
	column := r.URL.Query().Get("column")
	if column == "" {
		column = dm.ModelColumn
	}
	models := s.doc.Store.UniqueColumnValues(cex.ColumnQuery{
		Label:       dm.Label,
		ValueColumn: column,
	})
	writeJSON(w, map[string]any{"models": models})
}

func (s *Server) handleCollections(w http.ResponseWriter, r *http.Request) {
	dm := s.cfg.DataModels
	model := urlParam(r, "model")
	collections := s.doc.Store.UniqueColumnValues(cex.ColumnQuery{
		Label:       dm.Label,
		ValueColumn: dm.CollectionColumn,
		KeyColumn:   dm.ModelColumn,
		KeyValue:    model,
	})
	writeJSON(w, map[string]any{
		"model":       model,
		"collections": collections,
	})
}

func (s *Server) handleRelations(w http.ResponseWriter, r *http.Request) {
	includeHeader, err := boolParam(r, "header", s.cfg.IncludeRelationHeader())
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"relation_sets": s.doc.Store.RelationSets(includeHeader)})
}

// urlParam returns a decoded chi path parameter.
func urlParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

func boolParam(r *http.Request, name string, fallback bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s parameter %q: want true or false", name, v)
	}
	return b, nil
}
