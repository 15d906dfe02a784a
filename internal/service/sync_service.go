package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"stockbook/internal/infra"
	"stockbook/internal/model"
	"stockbook/internal/store"
)

var (
	// ErrInvalidImport rejects a backup document that is not JSON of the
	// expected top-level shape. Import is all-or-nothing per collection; an
	// invalid document changes no local data.
	ErrInvalidImport = errors.New("invalid import document")

	// ErrNoRemoteData means pull found no backup file under the configured name.
	ErrNoRemoteData = errors.New("no remote backup found")
)

// SyncService implements whole-database export/import and the push/pull
// reconciliation against a single named remote file. There is no merge: push
// overwrites the remote document entirely, pull overwrites local collections
// entirely. Last writer wins.
type SyncService interface {
	Export(ctx context.Context, identity string) (*model.ExportDocument, error)
	Import(ctx context.Context, identity string, raw []byte) error
	Push(ctx context.Context, identity, token string) (*model.SyncState, error)
	Pull(ctx context.Context, identity, token string) error
	State(ctx context.Context, identity string) (*model.SyncState, error)
}

type syncService struct {
	st       *store.Store
	drive    *infra.DriveClient
	fileName string
}

func NewSyncService(st *store.Store, drive *infra.DriveClient, fileName string) SyncService {
	return &syncService{st: st, drive: drive, fileName: fileName}
}

func (s *syncService) Export(ctx context.Context, identity string) (*model.ExportDocument, error) {
	customers, err := s.st.Customers.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, err
	}
	products, err := s.st.Products.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, err
	}
	logs, err := s.st.Logs.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, err
	}
	return &model.ExportDocument{
		Customers:  customers,
		Products:   products,
		Logs:       logs,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Version:    "1.0",
		Owner:      identity,
	}, nil
}

// importDoc distinguishes absent collections (nil, leave local data alone)
// from present-but-empty ones (overwrite with empty).
type importDoc struct {
	Customers *[]model.Customer `json:"customers"`
	Products  *[]model.Product  `json:"products"`
	Logs      *[]model.StockLog `json:"logs"`
}

func (s *syncService) Import(ctx context.Context, identity string, raw []byte) error {
	var doc importDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ErrInvalidImport
	}
	if doc.Customers == nil && doc.Products == nil && doc.Logs == nil {
		return ErrInvalidImport
	}

	s.st.Lock()
	defer s.st.Unlock()

	if doc.Customers != nil {
		if err := s.st.Customers.Replace(ctx, identity, *doc.Customers); err != nil {
			return err
		}
	}
	if doc.Products != nil {
		if err := s.st.Products.Replace(ctx, identity, *doc.Products); err != nil {
			return err
		}
	}
	if doc.Logs != nil {
		if err := s.st.Logs.Replace(ctx, identity, *doc.Logs); err != nil {
			return err
		}
	}
	return nil
}

func (s *syncService) Push(ctx context.Context, identity, token string) (*model.SyncState, error) {
	doc, err := s.Export(ctx, identity)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	fileID, err := s.drive.FindByName(ctx, token, s.fileName)
	if err != nil {
		return nil, err
	}
	if fileID == "" {
		if _, err := s.drive.Create(ctx, token, s.fileName, data); err != nil {
			return nil, err
		}
	} else {
		if err := s.drive.Update(ctx, token, fileID, data); err != nil {
			return nil, err
		}
	}

	state := model.SyncState{LastSync: time.Now().UTC().Format(time.RFC3339)}
	if err := s.st.SetSyncState(ctx, identity, state); err != nil {
		// The push itself succeeded; a failed timestamp write is not worth
		// reporting the whole sync as failed.
		log.Warn().Err(err).Str("identity", identity).Msg("push ok but sync state not recorded")
	}
	return &state, nil
}

func (s *syncService) Pull(ctx context.Context, identity, token string) error {
	fileID, err := s.drive.FindByName(ctx, token, s.fileName)
	if err != nil {
		return err
	}
	if fileID == "" {
		return ErrNoRemoteData
	}
	data, err := s.drive.Download(ctx, token, fileID)
	if err != nil {
		return err
	}
	return s.Import(ctx, identity, data)
}

func (s *syncService) State(ctx context.Context, identity string) (*model.SyncState, error) {
	state, err := s.st.SyncState(ctx, identity)
	if err != nil {
		return nil, err
	}
	return &state, nil
}
