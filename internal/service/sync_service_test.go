package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/infra"
	"stockbook/internal/model"
	"stockbook/internal/storage"
	"stockbook/internal/store"
)

// fakeDrive emulates the remote file-storage API: one file slot addressed by
// name, with list/create/update/download endpoints.
type fakeDrive struct {
	mu      sync.Mutex
	name    string
	content []byte
	fileID  string
	fail    bool
}

func (f *fakeDrive) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/files", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.Method {
		case http.MethodGet:
			files := []map[string]string{}
			if f.fileID != "" && strings.Contains(r.URL.Query().Get("q"), f.name) {
				files = append(files, map[string]string{"id": f.fileID, "name": f.name})
			}
			json.NewEncoder(w).Encode(map[string]any{"files": files})
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			// crude multipart split: the media part is the last JSON document
			idx := strings.LastIndex(string(body), "\r\n\r\n")
			payload := string(body)[idx+4:]
			if cut := strings.Index(payload, "\r\n--"); cut >= 0 {
				payload = payload[:cut]
			}
			f.content = []byte(payload)
			f.fileID = "file-1"
			json.NewEncoder(w).Encode(map[string]string{"id": f.fileID, "name": f.name})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/files/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.Method {
		case http.MethodPatch:
			body, _ := io.ReadAll(r.Body)
			f.content = body
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			w.Write(f.content)
		}
	})
	return mux
}

func newSyncFixture(t *testing.T) (SyncService, *store.Store, *fakeDrive) {
	t.Helper()
	fake := &fakeDrive{name: "stockbook_backup.json"}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	st := store.New(storage.NewMemory(), store.NewKeyspace("ss"))
	drive := infra.NewDriveClient(srv.URL, srv.URL)
	return NewSyncService(st, drive, fake.name), st, fake
}

func seedDataset(t *testing.T, st *store.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, st.Customers.Append(ctx, testIdentity, model.Customer{ID: "c1", Name: "Asha"}))
	require.NoError(t, st.Logs.Append(ctx, testIdentity, model.StockLog{
		ID: "l1", ProductID: "1", Quantity: 4, Type: model.MovementIn, Date: "2026-01-01T00:00:00Z",
	}))
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, st, _ := newSyncFixture(t)
	ctx := context.Background()
	seedDataset(t, st)

	doc, err := svc.Export(ctx, testIdentity)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, doc.Owner)
	assert.Equal(t, "1.0", doc.Version)
	assert.NotEmpty(t, doc.ExportedAt)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	// import into a fresh identity reproduces all three collections
	const other = "fresh@example.com"
	require.NoError(t, svc.Import(ctx, other, raw))

	customers, err := st.Customers.GetAll(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, doc.Customers, customers)

	products, err := st.Products.GetAll(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, doc.Products, products)

	logs, err := st.Logs.GetAll(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, doc.Logs, logs)
}

func TestImportAppliesOnlyPresentCollections(t *testing.T) {
	svc, st, _ := newSyncFixture(t)
	ctx := context.Background()
	seedDataset(t, st)

	raw := []byte(`{"customers":[{"id":"c9","name":"Only Customers"}],"unknownField":42}`)
	require.NoError(t, svc.Import(ctx, testIdentity, raw))

	customers, err := st.Customers.GetAll(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "c9", customers[0].ID)

	// logs were absent from the document, so local logs are untouched
	logs, err := st.Logs.GetAll(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "l1", logs[0].ID)
}

func TestImportRejectsGarbage(t *testing.T) {
	svc, st, _ := newSyncFixture(t)
	ctx := context.Background()
	seedDataset(t, st)

	assert.ErrorIs(t, svc.Import(ctx, testIdentity, []byte("not json")), ErrInvalidImport)
	assert.ErrorIs(t, svc.Import(ctx, testIdentity, []byte(`{"something":"else"}`)), ErrInvalidImport)

	// a rejected import changes nothing
	customers, err := st.Customers.GetAll(ctx, testIdentity)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestPushCreatesThenOverwritesRemote(t *testing.T) {
	svc, st, fake := newSyncFixture(t)
	ctx := context.Background()
	seedDataset(t, st)

	state, err := svc.Push(ctx, testIdentity, "tok")
	require.NoError(t, err)
	assert.NotEmpty(t, state.LastSync)
	assert.Equal(t, "file-1", fake.fileID, "first push creates the file")

	var doc model.ExportDocument
	require.NoError(t, json.Unmarshal(fake.content, &doc))
	require.Len(t, doc.Customers, 1)

	// second push goes through the update path and overwrites wholesale
	require.NoError(t, st.Customers.Append(ctx, testIdentity, model.Customer{ID: "c2", Name: "Binod"}))
	_, err = svc.Push(ctx, testIdentity, "tok")
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal(fake.content, &doc))
	assert.Len(t, doc.Customers, 2)

	// last-sync timestamp recorded locally
	st2, err := svc.State(ctx, testIdentity)
	require.NoError(t, err)
	assert.NotEmpty(t, st2.LastSync)
}

func TestPullOverwritesLocalWholesale(t *testing.T) {
	svc, st, _ := newSyncFixture(t)
	ctx := context.Background()
	seedDataset(t, st)

	_, err := svc.Push(ctx, testIdentity, "tok")
	require.NoError(t, err)

	// local diverges after the push
	require.NoError(t, st.Customers.Append(ctx, testIdentity, model.Customer{ID: "c2", Name: "Local Only"}))

	require.NoError(t, svc.Pull(ctx, testIdentity, "tok"))

	customers, err := st.Customers.GetAll(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, customers, 1, "pull replaced local data with the remote snapshot")
	assert.Equal(t, "c1", customers[0].ID)
}

func TestPullWithoutRemoteBackupFails(t *testing.T) {
	svc, _, _ := newSyncFixture(t)
	err := svc.Pull(context.Background(), testIdentity, "tok")
	assert.ErrorIs(t, err, ErrNoRemoteData)
}

func TestSyncFailuresSurfaceAsErrors(t *testing.T) {
	svc, st, fake := newSyncFixture(t)
	ctx := context.Background()
	seedDataset(t, st)
	fake.fail = true

	_, err := svc.Push(ctx, testIdentity, "tok")
	assert.Error(t, err)

	err = svc.Pull(ctx, testIdentity, "tok")
	assert.Error(t, err)

	// failed push records no sync state
	state, err := svc.State(ctx, testIdentity)
	require.NoError(t, err)
	assert.Empty(t, state.LastSync)
}
