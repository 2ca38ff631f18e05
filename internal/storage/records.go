// Package storage persists the best score between runs.
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordsObject   = "records"
	recordsProperty = "best"
)

type record struct {
	BestScore int `yaml:"bestScore"`
}

// Records хранит лучший счёт. Без gdata-менеджера рекорд живёт только в памяти.
type Records struct {
	manager *gdata.Manager
	best    int
}

// Open открывает хранилище приложения appName. Любая ошибка переводит
// Records в режим "только память".
func Open(appName string) *Records {
	if appName == "" {
		log.Println("Storage disabled, best score is kept in memory")
		return NewRecords(nil)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("WARNING: failed to open storage %q: %v (best score is kept in memory)", appName, err)
		return NewRecords(nil)
	}
	return NewRecords(manager)
}

// NewRecords создаёт Records поверх manager (может быть nil) и загружает рекорд.
func NewRecords(manager *gdata.Manager) *Records {
	r := &Records{manager: manager}
	if err := r.Load(); err != nil {
		log.Printf("WARNING: %v (starting from zero)", err)
	}
	return r
}

// Load читает сохранённый рекорд
func (r *Records) Load() error {
	if r.manager == nil || !r.manager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}
	data, err := r.manager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load best score: %w", err)
	}
	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal best score: %w", err)
	}
	r.best = rec.BestScore
	return nil
}

// Best возвращает лучший счёт
func (r *Records) Best() int {
	return r.best
}

// Submit запоминает score, если он лучше рекорда. Возвращает true для нового рекорда.
// Ошибка сохранения не отменяет рекорд в памяти.
func (r *Records) Submit(score int) (bool, error) {
	if score <= r.best {
		return false, nil
	}
	r.best = score
	return true, r.save()
}

func (r *Records) save() error {
	if r.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(record{BestScore: r.best})
	if err != nil {
		return fmt.Errorf("failed to marshal best score: %w", err)
	}
	if err := r.manager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save best score: %w", err)
	}
	return nil
}
