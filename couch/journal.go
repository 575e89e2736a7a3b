// Package couch keeps a record of finished drinks in CouchDB.
package couch

import (
	"context"
	_ "github.com/go-kivik/couchdb/v3"
	"github.com/go-kivik/kivik/v3"
	"github.com/jt05610/mocktails/pour"
	"time"
)

var _ pour.Journal = (*Journal)(nil)

type Journal struct {
	cancel func()
	db     *kivik.DB
}

// Entry is the document stored for each drink.
type Entry struct {
	ID            string      `json:"_id"`
	Rev           string      `json:"_rev,omitempty"`
	Recipe        string      `json:"recipe"`
	DrinkDuration int         `json:"drink_duration"`
	Pours         []pour.Pour `json:"pours"`
	CreatedAt     time.Time   `json:"created_at"`
	FinishedAt    time.Time   `json:"finished_at"`
}

// Open connects to the CouchDB server at uri and creates the database if it does not exist.
func Open(uri string, name string) (*Journal, error) {
	client, err := kivik.New("couch", uri)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	exists, err := client.DBExists(ctx, name)
	if err != nil {
		cancel()
		return nil, err
	}
	if !exists {
		err = client.CreateDB(ctx, name)
		if err != nil {
			cancel()
			return nil, err
		}
	}
	db := client.DB(ctx, name)
	if err := db.Err(); err != nil {
		cancel()
		return nil, err
	}
	return &Journal{
		cancel: cancel,
		db:     db,
	}, nil
}

func (j *Journal) Close() error {
	j.cancel()
	return nil
}

func (j *Journal) Record(ctx context.Context, plan *pour.Plan) error {
	e := &Entry{
		ID:            plan.ID.String(),
		Recipe:        plan.Recipe,
		DrinkDuration: plan.DrinkDuration,
		Pours:         plan.Pours,
		CreatedAt:     plan.CreatedAt,
		FinishedAt:    time.Now(),
	}
	_, err := j.db.Put(ctx, e.ID, e)
	return err
}

func (j *Journal) Get(ctx context.Context, id string) (*Entry, error) {
	var ret Entry
	row := j.db.Get(ctx, id)
	if err := row.ScanDoc(&ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

// List returns every recorded drink of the given recipe.
func (j *Journal) List(ctx context.Context, recipe string) ([]*Entry, error) {
	ret := make([]*Entry, 0)
	rows, err := j.db.Find(ctx, map[string]interface{}{
		"selector": map[string]interface{}{"recipe": recipe},
	})
	if err != nil {
		return ret, err
	}
	defer func() {
		_ = rows.Close()
	}()
	for rows.Next() {
		var e Entry
		if err := rows.ScanDoc(&e); err != nil {
			return ret, err
		}
		ret = append(ret, &e)
	}
	return ret, rows.Err()
}
