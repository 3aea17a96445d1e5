package services

import (
	"context"
	"slices"
	"strings"
	"sync"

	"adminpanel/logger"
	"adminpanel/utils"
)

// Option 선택 목록 한 항목
type Option struct {
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Detail string `json:"detail,omitempty"`
	Active bool   `json:"active"`
}

// Scope narrows a picker to the items related to a parent selection, e.g. {"sedeId": 3}.
type Scope map[string]int64

// PickerConfig describes how a picker fetches and presents T.
type PickerConfig[T any] struct {
	Kind   string
	Fetch  func(ctx context.Context) ([]T, error)
	Option func(T) Option
	// ScopeKey/ScopeOf 가 있으면 Scope[ScopeKey] 로 필터링한다.
	ScopeKey string
	ScopeOf  func(T) int64
}

// Picker 한 번 가져와 캐시한 목록을 클라이언트 쪽에서 필터링한다. 여러 고루틴에서 사용해도 안전하다.
type Picker[T any] struct {
	cfg PickerConfig[T]

	loadMu sync.Mutex // serializes fetches

	mu      sync.RWMutex
	loaded  bool
	items   []T
	options []Option
	errMsg  string
}

// NewPicker creates an unloaded picker.
func NewPicker[T any](cfg PickerConfig[T]) *Picker[T] {
	return &Picker[T]{cfg: cfg}
}

func (p *Picker[T]) Kind() string {
	return p.cfg.Kind
}

// Load 목록을 한 번만 가져온다. 이미 불러온 경우 아무것도 하지 않는다.
// 실패한 경우 다음 Load 가 다시 시도한다.
func (p *Picker[T]) Load(ctx context.Context) error {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	p.mu.RLock()
	loaded := p.loaded
	p.mu.RUnlock()
	if loaded {
		return nil
	}
	return p.fetchLocked(ctx)
}

// Reload 강제로 다시 가져온다.
func (p *Picker[T]) Reload(ctx context.Context) error {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()
	return p.fetchLocked(ctx)
}

func (p *Picker[T]) fetchLocked(ctx context.Context) error {
	items, err := p.cfg.Fetch(ctx)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"picker": p.cfg.Kind,
			"error":  err.Error(),
		}).Warn("Picker fetch failed")

		// 실패한 목록은 이전 캐시를 보여주지 않는다.
		p.mu.Lock()
		p.items = nil
		p.options = nil
		p.loaded = false
		p.errMsg = UserMessage(err)
		p.mu.Unlock()
		return err
	}

	options := make([]Option, len(items))
	for i, item := range items {
		options[i] = p.cfg.Option(item)
	}

	p.mu.Lock()
	p.items = items
	p.options = options
	p.loaded = true
	p.errMsg = ""
	p.mu.Unlock()
	return nil
}

// Loaded reports whether a fetch has succeeded.
func (p *Picker[T]) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// Err 마지막 실패 메시지 (없으면 빈 문자열)
func (p *Picker[T]) Err() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.errMsg
}

// Items returns a copy of the cached list.
func (p *Picker[T]) Items() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]T(nil), p.items...)
}

// Options 검색어(대소문자, 악센트 무시)와 범위로 필터링한 항목을 라벨 순으로 돌려준다.
// 아직 불러오지 못했으면 빈 목록.
func (p *Picker[T]) Options(query string, scope Scope) []Option {
	needle := utils.Fold(query)
	var scopeID int64
	if p.cfg.ScopeKey != "" && p.cfg.ScopeOf != nil {
		scopeID = scope[p.cfg.ScopeKey]
	}

	p.mu.RLock()
	out := make([]Option, 0, len(p.options))
	for i, opt := range p.options {
		if scopeID != 0 && p.cfg.ScopeOf(p.items[i]) != scopeID {
			continue
		}
		if needle != "" &&
			!strings.Contains(utils.Fold(opt.Label), needle) &&
			!strings.Contains(utils.Fold(opt.Detail), needle) {
			continue
		}
		out = append(out, opt)
	}
	p.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b Option) int {
		return strings.Compare(utils.Fold(a.Label), utils.Fold(b.Label))
	})
	return out
}

// Find 목록을 (필요하면) 불러온 뒤 id 로 항목을 찾는다.
func (p *Picker[T]) Find(ctx context.Context, id int64) (T, bool, error) {
	var zero T
	if err := p.Load(ctx); err != nil {
		return zero, false, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	for i, opt := range p.options {
		if opt.ID == id {
			return p.items[i], true, nil
		}
	}
	return zero, false, nil
}

func (p *Picker[T]) contains(ctx context.Context, id int64) (bool, error) {
	_, ok, err := p.Find(ctx, id)
	return ok, err
}

// Bind 소비자별 선택 상태를 만든다. onChange 는 선택이 바뀔 때마다 호출된다.
func (p *Picker[T]) Bind(onChange func(id int64)) *Selection {
	return &Selection{source: p, onChange: onChange}
}

type optionLookup interface {
	contains(ctx context.Context, id int64) (bool, error)
}

// Selection 하나의 폼 필드가 가진 선택 값
type Selection struct {
	source   optionLookup
	onChange func(id int64)

	mu       sync.Mutex
	selected int64
}

// Select 목록에 있는 id 만 받아들이고 상위로 알린다. 0 은 선택 해제.
func (s *Selection) Select(ctx context.Context, id int64) error {
	if id != 0 {
		ok, err := s.source.contains(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownOption
		}
	}

	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(id)
	}
	return nil
}

// Selected returns the current id, 0 when nothing is selected.
func (s *Selection) Selected() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Clear is Select(ctx, 0).
func (s *Selection) Clear() {
	_ = s.Select(context.Background(), 0)
}
