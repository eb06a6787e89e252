package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/quasilyte/gdata"
)

var (
	ErrNotFound = errors.New("replay not found")
	ErrBadName  = errors.New("invalid replay name")
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// Store is the key-value persistence a replay is kept in. *gdata.Manager
// satisfies it.
type Store interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
}

// OpenStore opens the gdata store for app.
func OpenStore(app string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: app,
	})
	if err != nil {
		return nil, fmt.Errorf("open replay store %q: %w", app, err)
	}
	return m, nil
}

func itemKey(name string) (string, error) {
	if !validName.MatchString(name) {
		return "", fmt.Errorf("%q: %w", name, ErrBadName)
	}
	return "replay_" + name, nil
}

// Save stores rec under name.
func Save(store Store, name string, rec *Recording) error {
	key, err := itemKey(name)
	if err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode replay %q: %w", name, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save replay %q: %w", name, err)
	}

	log.Printf("Saved replay %q: level %s, %d ticks", name, rec.Level, rec.Ticks)
	return nil
}

// Load reads the recording stored under name.
func Load(store Store, name string) (*Recording, error) {
	key, err := itemKey(name)
	if err != nil {
		return nil, err
	}

	data, err := store.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("load replay %q: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode replay %q: %w", name, err)
	}
	return &rec, nil
}
