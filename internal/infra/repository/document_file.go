package repository

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// 1コレクション=1つのJSONドキュメントファイル。
// 読み書きはmuで直列化する（プロセス内の単一ライター）。
type documentFile[T any] struct {
	path string
	mu   sync.Mutex
}

func (f *documentFile[T]) list(seed []T) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load(seed)
}

// read-modify-write全体をロックの中で行う。
// fnがエラーを返したらファイルは触らない。
func (f *documentFile[T]) mutate(seed []T, fn func(items []T) ([]T, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load(seed)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return f.store(next)
}

// ファイルが無ければシードを書き込んで返す。
// 読めない・壊れている場合は上書きせず、その呼び出しに限りシードで代用する。
func (f *documentFile[T]) load(seed []T) ([]T, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := f.store(seed); err != nil {
			return nil, err
		}
		return slices.Clone(seed), nil
	}
	if err != nil {
		zap.S().Warnf("could not read %s, falling back to defaults: %v", f.path, err)
		return slices.Clone(seed), nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		zap.S().Warnf("broken document %s, falling back to defaults: %v", f.path, err)
		return slices.Clone(seed), nil
	}
	return items, nil
}

// 一時ファイルに書いてからrenameで差し替える。
// 途中でプロセスが落ちても旧ファイルか新ファイルのどちらかが残る。
func (f *documentFile[T]) store(items []T) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
