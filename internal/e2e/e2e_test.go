package e2e

import (
	"encoding/json"
	"net/http"
	"testing"

	"hookd/pkg/types"
)

func TestE2E_DefinitionsDriveStartup(t *testing.T) {
	srv, _ := newServerForDefs(t, map[string]string{
		"article.yaml": "id: article\nfields:\n  title: draft\nbehaviors:\n  - name: timestamp\n  - name: counter\n    config:\n      events: [afterSave]\n",
	})
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/entities/article", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d body=%s", resp.StatusCode, body)
	}
	var st types.EntityStatus
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(st.Behaviors) != 2 || st.Behaviors[0] != "timestamp" || st.Behaviors[1] != "counter" {
		t.Fatalf("unexpected behaviors: %v", st.Behaviors)
	}
	if st.Handlers["beforeSave"] != 1 || st.Handlers["afterSave"] != 1 {
		t.Fatalf("unexpected handler counts: %v", st.Handlers)
	}
}

func TestE2E_SaveDetachSymmetry(t *testing.T) {
	srv, reg := newServerForDefs(t, map[string]string{
		"doc.json": `{"id":"doc","behaviors":[{"name":"timestamp"}]}`,
	})

	// save through the behavior: payload gains timestamps
	resp, body := doJSON(t, http.MethodPut, srv.URL+"/entities/doc/fields",
		types.SaveFieldsRequest{Fields: map[string]any{"title": "x"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status=%d body=%s", resp.StatusCode, body)
	}
	var sr types.SaveResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !sr.Saved {
		t.Fatalf("save vetoed: %+v", sr)
	}
	if _, ok := sr.Fields["updated_at"]; !ok {
		t.Fatalf("behavior did not stamp: %+v", sr.Fields)
	}

	// detach over HTTP: the owner's subscription table must be empty again
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/entities/doc/behaviors/timestamp", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("detach status=%d", resp.StatusCode)
	}
	e, err := reg.Get("doc")
	if err != nil {
		t.Fatalf("get entity: %v", err)
	}
	if names := e.EventNames(); len(names) != 0 {
		t.Fatalf("registrations leaked after detach: %v", names)
	}

	// second save: no more stamping
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/entities/doc/fields",
		types.SaveFieldsRequest{Fields: map[string]any{"other": true}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status=%d", resp.StatusCode)
	}
	sr = types.SaveResponse{}
	if err := json.Unmarshal(body, &sr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := sr.Fields["updated_at"]; ok {
		t.Fatalf("detached behavior still stamping: %+v", sr.Fields)
	}
}

func TestE2E_AttachTriggerDetachFlow(t *testing.T) {
	srv, _ := newServerForDefs(t, nil)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/entities",
		types.CreateEntityRequest{ID: "job", Fields: map[string]any{"state": "new"}})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/entities/job/behaviors",
		types.AttachRequest{Name: "audit", Config: map[string]any{"events": []string{"started", "finished"}}})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("attach status=%d", resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/entities/job/events/started", map[string]any{"by": "tester"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("trigger status=%d", resp.StatusCode)
	}
	var tr types.TriggerResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tr.Handlers != 1 {
		t.Fatalf("expected 1 handler got %d", tr.Handlers)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/entities/job/behaviors/audit", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("detach status=%d", resp.StatusCode)
	}

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/entities/job/events/started", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("trigger status=%d", resp.StatusCode)
	}
	tr = types.TriggerResponse{}
	if err := json.Unmarshal(body, &tr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tr.Handlers != 0 {
		t.Fatalf("expected 0 handlers after detach got %d", tr.Handlers)
	}
}
