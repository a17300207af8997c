package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func init() {
	// Session tests go through the registry, so they need a registered
	// schema of their own.
	RegisterSchema(InputSchema{
		Key:               "svc-items",
		Label:             "Service Test Items",
		CodeColumn:        "Item Code",
		DescriptionColumn: "Description",
		QuantityColumn:    "Label Quantity",
		Rule:              QuantityStrict,
	})
}

const svcPaste = "Item Code\tDescription\tLabel Quantity\n" +
	"A-100\tWidget large\t3\n" +
	"B-200\tWidget small\t1\n"

// ============================================================================
// Service Tests
// ============================================================================

func TestServiceSessionLifecycle(t *testing.T) {
	svc := NewService(ServiceOptions{})

	view := svc.CreateSession()
	if view.ID == "" {
		t.Fatal("CreateSession() returned empty id")
	}
	if len(view.Records) != 0 {
		t.Fatalf("new session has %d records", len(view.Records))
	}

	got, err := svc.Session(view.ID)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if got.ID != view.ID {
		t.Errorf("Session().ID = %q, want %q", got.ID, view.ID)
	}

	if err := svc.DeleteSession(view.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if _, err := svc.Session(view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Session() after delete error = %v, want ErrSessionNotFound", err)
	}
	if err := svc.DeleteSession(view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("DeleteSession() twice error = %v, want ErrSessionNotFound", err)
	}
}

func TestServiceParseInto(t *testing.T) {
	svc := NewService(ServiceOptions{})
	sess := svc.CreateSession()

	result, err := svc.ParseInto(sess.ID, svcPaste, "svc-items")
	if err != nil {
		t.Fatalf("ParseInto() error = %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("parsed %d records, want 2", len(result.Records))
	}

	// A second paste appends and record ids keep counting.
	result, err = svc.ParseInto(sess.ID, svcPaste, "svc-items")
	if err != nil {
		t.Fatalf("second ParseInto() error = %v", err)
	}
	if got := result.Records[0].ID; got != "rec-3" {
		t.Errorf("second paste first id = %q, want rec-3", got)
	}

	records, err := svc.Records(sess.ID)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 4 {
		t.Errorf("session holds %d records, want 4", len(records))
	}
}

func TestServiceParseIntoErrors(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		svc := NewService(ServiceOptions{})
		_, err := svc.ParseInto("nope", svcPaste, "svc-items")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("unknown schema", func(t *testing.T) {
		svc := NewService(ServiceOptions{})
		sess := svc.CreateSession()
		_, err := svc.ParseInto(sess.ID, svcPaste, "no-such-schema")
		if !errors.Is(err, ErrUnknownSchema) {
			t.Errorf("error = %v, want ErrUnknownSchema", err)
		}
	})

	t.Run("input too large", func(t *testing.T) {
		svc := NewService(ServiceOptions{MaxInputBytes: 10})
		sess := svc.CreateSession()
		_, err := svc.ParseInto(sess.ID, svcPaste, "svc-items")
		if !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("session record limit", func(t *testing.T) {
		svc := NewService(ServiceOptions{MaxRecords: 1})
		sess := svc.CreateSession()
		_, err := svc.ParseInto(sess.ID, svcPaste, "svc-items")
		if !errors.Is(err, ErrSessionFull) {
			t.Errorf("error = %v, want ErrSessionFull", err)
		}
		// The failed paste must not leave partial records behind.
		records, err := svc.Records(sess.ID)
		if err != nil {
			t.Fatalf("Records() error = %v", err)
		}
		if len(records) != 0 {
			t.Errorf("session holds %d records after failed paste, want 0", len(records))
		}
	})
}

func TestServiceAddRecord(t *testing.T) {
	svc := NewService(ServiceOptions{})
	sess := svc.CreateSession()

	rec, err := svc.AddRecord(sess.ID, " C-300 ", "Caja​ de tornillos", 4)
	if err != nil {
		t.Fatalf("AddRecord() error = %v", err)
	}
	if rec.ID != "rec-1" {
		t.Errorf("ID = %q, want rec-1", rec.ID)
	}
	if rec.Code != "C-300" {
		t.Errorf("Code = %q, want C-300", rec.Code)
	}
	if rec.Description != "Caja de tornillos" {
		t.Errorf("Description = %q", rec.Description)
	}

	t.Run("zero quantity allowed", func(t *testing.T) {
		if _, err := svc.AddRecord(sess.ID, "D-400", "Repuesto", 0); err != nil {
			t.Errorf("AddRecord() with zero quantity error = %v", err)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name     string
			code     string
			desc     string
			quantity int
			wantErr  error
		}{
			{name: "empty code", code: "  ", desc: "Caja", quantity: 1, wantErr: ErrEmptyField},
			{name: "empty description", code: "C-1", desc: "​ ", quantity: 1, wantErr: ErrEmptyField},
			{name: "negative quantity", code: "C-1", desc: "Caja", quantity: -1, wantErr: ErrInvalidQuantity},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.AddRecord(sess.ID, tt.code, tt.desc, tt.quantity)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddRecord() error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	})
}

func TestServiceSetQuantity(t *testing.T) {
	svc := NewService(ServiceOptions{})
	sess := svc.CreateSession()
	rec, err := svc.AddRecord(sess.ID, "A-1", "Widget", 3)
	if err != nil {
		t.Fatalf("AddRecord() error = %v", err)
	}

	updated, err := svc.SetQuantity(sess.ID, rec.ID, 7)
	if err != nil {
		t.Fatalf("SetQuantity() error = %v", err)
	}
	if updated.Quantity != 7 {
		t.Errorf("Quantity = %d, want 7", updated.Quantity)
	}

	if _, err := svc.SetQuantity(sess.ID, rec.ID, 0); err != nil {
		t.Errorf("SetQuantity(0) error = %v", err)
	}
	if _, err := svc.SetQuantity(sess.ID, rec.ID, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("SetQuantity(-1) error = %v, want ErrInvalidQuantity", err)
	}
	if _, err := svc.SetQuantity(sess.ID, "rec-999", 1); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("SetQuantity(unknown) error = %v, want ErrRecordNotFound", err)
	}
}

func TestServiceRemoveAndClear(t *testing.T) {
	svc := NewService(ServiceOptions{})
	sess := svc.CreateSession()
	if _, err := svc.ParseInto(sess.ID, svcPaste, "svc-items"); err != nil {
		t.Fatalf("ParseInto() error = %v", err)
	}

	if err := svc.RemoveRecord(sess.ID, "rec-1"); err != nil {
		t.Fatalf("RemoveRecord() error = %v", err)
	}
	records, _ := svc.Records(sess.ID)
	if len(records) != 1 || records[0].ID != "rec-2" {
		t.Errorf("records after remove = %+v", records)
	}

	if err := svc.RemoveRecord(sess.ID, "rec-1"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("RemoveRecord() twice error = %v, want ErrRecordNotFound", err)
	}

	if err := svc.ClearRecords(sess.ID); err != nil {
		t.Fatalf("ClearRecords() error = %v", err)
	}
	records, _ = svc.Records(sess.ID)
	if len(records) != 0 {
		t.Errorf("records after clear = %+v", records)
	}

	// Cleared sessions accept new pastes with ids continuing onward.
	result, err := svc.ParseInto(sess.ID, svcPaste, "svc-items")
	if err != nil {
		t.Fatalf("ParseInto() after clear error = %v", err)
	}
	if got := result.Records[0].ID; got != "rec-3" {
		t.Errorf("id after clear = %q, want rec-3", got)
	}
}

func TestServiceEncodeSession(t *testing.T) {
	svc := NewService(ServiceOptions{})
	sess := svc.CreateSession()
	if _, err := svc.ParseInto(sess.ID, svcPaste, "svc-items"); err != nil {
		t.Fatalf("ParseInto() error = %v", err)
	}

	doc, name, err := svc.EncodeSession(sess.ID, "pm42-triple-split")
	if err != nil {
		t.Fatalf("EncodeSession() error = %v", err)
	}
	if !strings.HasPrefix(name, "etiquetas-") || !strings.HasSuffix(name, ".prn") {
		t.Errorf("file name = %q", name)
	}

	info, err := InspectDocument(doc)
	if err != nil {
		t.Fatalf("InspectDocument() error = %v", err)
	}
	// A-100 qty 3 splits into two blocks; B-200 qty 1 is one block.
	if len(info.Blocks) != 3 {
		t.Errorf("blocks = %d, want 3", len(info.Blocks))
	}
	if info.TotalLabels != 4 {
		t.Errorf("TotalLabels = %d, want 4", info.TotalLabels)
	}

	t.Run("session survives encoding", func(t *testing.T) {
		records, err := svc.Records(sess.ID)
		if err != nil {
			t.Fatalf("Records() error = %v", err)
		}
		if len(records) != 2 {
			t.Errorf("records = %d, want 2", len(records))
		}
	})

	t.Run("empty session yields header only", func(t *testing.T) {
		empty := svc.CreateSession()
		doc, _, err := svc.EncodeSession(empty.ID, "pm42-triple-split")
		if err != nil {
			t.Fatalf("EncodeSession() error = %v", err)
		}
		info, err := InspectDocument(doc)
		if err != nil {
			t.Fatalf("InspectDocument() error = %v", err)
		}
		if len(info.Blocks) != 0 {
			t.Errorf("blocks = %d, want 0", len(info.Blocks))
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, _, err := svc.EncodeSession(sess.ID, "no-such-profile")
		if !errors.Is(err, ErrUnknownProfile) {
			t.Errorf("error = %v, want ErrUnknownProfile", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		_, _, err := svc.EncodeSession("nope", "pm42-triple-split")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("error = %v, want ErrSessionNotFound", err)
		}
	})
}

func TestServiceEncodeText(t *testing.T) {
	svc := NewService(ServiceOptions{})

	doc, result, name, err := svc.EncodeText(svcPaste, "svc-items", "pm42-single-exact")
	if err != nil {
		t.Fatalf("EncodeText() error = %v", err)
	}
	if len(result.Records) != 2 {
		t.Errorf("parsed %d records, want 2", len(result.Records))
	}
	if !strings.HasPrefix(name, "etiquetas-") {
		t.Errorf("file name = %q", name)
	}

	info, err := InspectDocument(doc)
	if err != nil {
		t.Fatalf("InspectDocument() error = %v", err)
	}
	if len(info.Blocks) != 2 {
		t.Errorf("blocks = %d, want 2", len(info.Blocks))
	}
	if info.TotalLabels != 4 {
		t.Errorf("TotalLabels = %d, want 4", info.TotalLabels)
	}

	if svc.SessionCount() != 0 {
		t.Errorf("EncodeText() created %d sessions, want 0", svc.SessionCount())
	}
}

func TestServiceSessionEviction(t *testing.T) {
	svc := NewService(ServiceOptions{SessionCapacity: 1})

	first := svc.CreateSession()
	second := svc.CreateSession()

	if _, err := svc.Session(first.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("evicted session error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Session(second.ID); err != nil {
		t.Errorf("live session error = %v", err)
	}
}

func TestServiceSessionExpiry(t *testing.T) {
	svc := NewService(ServiceOptions{SessionTTL: 20 * time.Millisecond})
	sess := svc.CreateSession()

	time.Sleep(100 * time.Millisecond)

	if _, err := svc.Session(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expired session error = %v, want ErrSessionNotFound", err)
	}
}

func TestServiceViewIsSnapshot(t *testing.T) {
	svc := NewService(ServiceOptions{})
	sess := svc.CreateSession()
	if _, err := svc.AddRecord(sess.ID, "A-1", "Widget", 1); err != nil {
		t.Fatalf("AddRecord() error = %v", err)
	}

	view, err := svc.Session(sess.ID)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	view.Records[0].Code = "tampered"

	records, _ := svc.Records(sess.ID)
	if records[0].Code != "A-1" {
		t.Error("mutating a view leaked into the session")
	}
}

func TestDocumentFileName(t *testing.T) {
	ts := time.Date(2026, 8, 22, 15, 45, 30, 0, time.UTC)
	if got := DocumentFileName(ts); got != "etiquetas-20260822-154530.prn" {
		t.Errorf("DocumentFileName() = %q", got)
	}
}
