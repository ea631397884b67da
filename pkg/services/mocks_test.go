package services

import (
	"context"

	"github.com/kerbaras/gallery/pkg/data"
)

// Mock implementations for testing

type mockSource struct {
	fetchFunc func(ctx context.Context) (*data.Content, error)
}

func (m *mockSource) Fetch(ctx context.Context) (*data.Content, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return &data.Content{}, nil
}

type mockStore struct {
	saveSnapshotFunc   func(snapshot *data.Snapshot) error
	getSnapshotFunc    func(id string) (*data.Snapshot, error)
	latestSnapshotFunc func() (*data.Snapshot, error)
	listSnapshotsFunc  func() ([]*data.Snapshot, error)
	countFunc          func(snapshotID string) (int, error)
	deleted            []string
	closed             bool
}

func (m *mockStore) SaveSnapshot(snapshot *data.Snapshot) error {
	if m.saveSnapshotFunc != nil {
		return m.saveSnapshotFunc(snapshot)
	}
	return nil
}

func (m *mockStore) GetSnapshot(id string) (*data.Snapshot, error) {
	if m.getSnapshotFunc != nil {
		return m.getSnapshotFunc(id)
	}
	return nil, nil
}

func (m *mockStore) LatestSnapshot() (*data.Snapshot, error) {
	if m.latestSnapshotFunc != nil {
		return m.latestSnapshotFunc()
	}
	return nil, nil
}

func (m *mockStore) ListSnapshots() ([]*data.Snapshot, error) {
	if m.listSnapshotsFunc != nil {
		return m.listSnapshotsFunc()
	}
	return nil, nil
}

func (m *mockStore) CountCharacters(snapshotID string) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(snapshotID)
	}
	return 0, nil
}

func (m *mockStore) DeleteSnapshot(id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockStore) Close() error {
	m.closed = true
	return nil
}
