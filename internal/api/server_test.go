package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/jorge-barreto/cex/internal/config"
	"github.com/jorge-barreto/cex/internal/loader"
)

const testDoc = `#!cexversion
3.0

#!datamodels
Collection|Model|Label
urn:cite2:hmt:vaimg.v1:|imagemodel|Images
urn:cite2:hmt:msA.v1:|tbsmodel|Pages
urn:cite2:hmt:e4.v1:|imagemodel|Images

#!citerelationset
urn|urn:cite2:hmt:va_dse.v1:
label|DSE records for Venetus A
passage|imageroi|surface
urn:cts:greekLit:tlg0012.tlg001.msA:1.1|urn:cite2:hmt:vaimg.v1:VA012RN_0013@0.1,0.2,0.3,0.4|urn:cite2:hmt:msA.v1:12r

#!ctscatalog
urn|citationScheme|groupName
urn:cts:greekLit:tlg0012.tlg001.msA:|book,line|Iliad
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	doc, err := loader.Read("test.cex", strings.NewReader(testDoc), nil)
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.DiscardHandler)
	return NewServer(doc, log, config.Default())
}

func get(t *testing.T, s *Server, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v (body %q)", path, err, rec.Body.String())
		}
	}
	return rec.Code
}

func TestHealth(t *testing.T) {
	var body map[string]string
	if code := get(t, newTestServer(t), "/health", &body); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestLabels(t *testing.T) {
	var body struct {
		Labels []struct {
			Label  string `json:"label"`
			Blocks int    `json:"blocks"`
		} `json:"labels"`
	}
	get(t, newTestServer(t), "/api/labels", &body)
	var got []string
	for _, l := range body.Labels {
		got = append(got, l.Label)
	}
	want := []string{"cexversion", "datamodels", "citerelationset", "ctscatalog"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBlocks_Absent(t *testing.T) {
	var body struct {
		Bodies []string `json:"bodies"`
	}
	if code := get(t, newTestServer(t), "/api/blocks/nothing", &body); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body.Bodies == nil || len(body.Bodies) != 0 {
		t.Fatalf("expected empty list, got %#v", body.Bodies)
	}
}

func TestTable_NoHeader(t *testing.T) {
	var body struct {
		Data string `json:"data"`
	}
	get(t, newTestServer(t), "/api/tables/ctscatalog?header=false", &body)
	if body.Data != "urn:cts:greekLit:tlg0012.tlg001.msA:|book,line|Iliad" {
		t.Fatalf("unexpected data %q", body.Data)
	}
}

func TestTable_BadHeaderParam(t *testing.T) {
	var body map[string]string
	if code := get(t, newTestServer(t), "/api/tables/ctscatalog?header=maybe", &body); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !strings.Contains(body["error"], "header") {
		t.Fatalf("unexpected error %q", body["error"])
	}
}

func TestValues(t *testing.T) {
	var body struct {
		Values []string `json:"values"`
	}
	get(t, newTestServer(t), "/api/values/datamodels?column=Collection&key=Model&value=imagemodel", &body)
	want := []string{"urn:cite2:hmt:e4.v1:", "urn:cite2:hmt:vaimg.v1:"}
	if !reflect.DeepEqual(body.Values, want) {
		t.Fatalf("expected %v, got %v", want, body.Values)
	}
}

func TestValues_ColumnRequired(t *testing.T) {
	if code := get(t, newTestServer(t), "/api/values/datamodels", nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestModelsAndCollections(t *testing.T) {
	s := newTestServer(t)

	var models struct {
		Models []string `json:"models"`
	}
	get(t, s, "/api/models", &models)
	if !reflect.DeepEqual(models.Models, []string{"imagemodel", "tbsmodel"}) {
		t.Fatalf("unexpected models %v", models.Models)
	}

	var cols struct {
		Collections []string `json:"collections"`
	}
	get(t, s, "/api/models/tbsmodel/collections", &cols)
	if !reflect.DeepEqual(cols.Collections, []string{"urn:cite2:hmt:msA.v1:"}) {
		t.Fatalf("unexpected collections %v", cols.Collections)
	}
}

func TestRelations(t *testing.T) {
	var body struct {
		Sets []struct {
			URN   string `json:"urn"`
			Label string `json:"label"`
			Data  string `json:"data"`
		} `json:"relation_sets"`
	}
	get(t, newTestServer(t), "/api/relations", &body)
	if len(body.Sets) != 1 {
		t.Fatalf("expected 1 relation set, got %d", len(body.Sets))
	}
	rs := body.Sets[0]
	if rs.URN != "urn:cite2:hmt:va_dse.v1:" || rs.Label != "DSE records for Venetus A" {
		t.Fatalf("unexpected record %+v", rs)
	}
	if !strings.HasPrefix(rs.Data, "passage|imageroi|surface\n") {
		t.Fatalf("expected data with header, got %q", rs.Data)
	}
}
