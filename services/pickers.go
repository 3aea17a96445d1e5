package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"adminpanel/models"
)

// Picker kinds
const (
	PickerAreas             = "areas"
	PickerSites             = "sedes"
	PickerPositions         = "cargos"
	PickerRoles             = "roles"
	PickerModules           = "modulos"
	PickerDispensers        = "choperas"
	PickerCustomers         = "clientes"
	PickerEmployees         = "empleados"
	PickerMerchandisers     = "mercaderistas"
	PickerRoutes            = "rutas"
	PickerMerchandiserTypes = "tipos-mercaderista"
)

// OptionSource is the kind-agnostic view of a picker used by the HTTP layer.
type OptionSource interface {
	Kind() string
	Load(ctx context.Context) error
	Reload(ctx context.Context) error
	Loaded() bool
	Err() string
	Options(query string, scope Scope) []Option
	Bind(onChange func(id int64)) *Selection
}

// PickerSources 선택 목록별 백엔드 호출
type PickerSources struct {
	Areas             Lister[models.Area]
	Sites             Lister[models.Site]
	Positions         Lister[models.Position]
	Roles             Lister[models.Role]
	Modules           Lister[models.Module]
	Dispensers        Lister[models.Dispenser]
	Customers         Lister[models.Customer]
	Employees         Lister[models.Employee]
	Merchandisers     Lister[models.Merchandiser]
	Routes            Lister[models.Route]
	MerchandiserTypes Lister[models.MerchandiserType]
}

// PickerRegistry 11개의 선택 목록
type PickerRegistry struct {
	Areas             *Picker[models.Area]
	Sites             *Picker[models.Site]
	Positions         *Picker[models.Position]
	Roles             *Picker[models.Role]
	Modules           *Picker[models.Module]
	Dispensers        *Picker[models.Dispenser]
	Customers         *Picker[models.Customer]
	Employees         *Picker[models.Employee]
	Merchandisers     *Picker[models.Merchandiser]
	Routes            *Picker[models.Route]
	MerchandiserTypes *Picker[models.MerchandiserType]

	byKind map[string]OptionSource
}

func personName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// NewPickerRegistry wires every picker to its source.
func NewPickerRegistry(src PickerSources) *PickerRegistry {
	r := &PickerRegistry{
		Areas: NewPicker(PickerConfig[models.Area]{
			Kind:     PickerAreas,
			Fetch:    src.Areas.GetAll,
			Option:   func(a models.Area) Option { return Option{ID: a.ID, Label: a.Name, Active: a.Active} },
			ScopeKey: "sedeId",
			ScopeOf:  func(a models.Area) int64 { return a.SiteID },
		}),
		Sites: NewPicker(PickerConfig[models.Site]{
			Kind:   PickerSites,
			Fetch:  src.Sites.GetAll,
			Option: func(s models.Site) Option { return Option{ID: s.ID, Label: s.Name, Detail: s.Address, Active: s.Active} },
		}),
		Positions: NewPicker(PickerConfig[models.Position]{
			Kind:   PickerPositions,
			Fetch:  src.Positions.GetAll,
			Option: func(p models.Position) Option { return Option{ID: p.ID, Label: p.Name, Active: p.Active} },
		}),
		Roles: NewPicker(PickerConfig[models.Role]{
			Kind:   PickerRoles,
			Fetch:  src.Roles.GetAll,
			Option: func(r models.Role) Option { return Option{ID: r.ID, Label: r.Name, Detail: r.Description, Active: r.Active} },
		}),
		Modules: NewPicker(PickerConfig[models.Module]{
			Kind:   PickerModules,
			Fetch:  src.Modules.GetAll,
			Option: func(m models.Module) Option { return Option{ID: m.ID, Label: m.Name, Detail: m.Route, Active: m.Active} },
		}),
		Dispensers: NewPicker(PickerConfig[models.Dispenser]{
			Kind:   PickerDispensers,
			Fetch:  src.Dispensers.GetAll,
			Option: func(d models.Dispenser) Option { return Option{ID: d.ID, Label: d.Name, Detail: d.Code, Active: d.Active} },
		}),
		Customers: NewPicker(PickerConfig[models.Customer]{
			Kind:   PickerCustomers,
			Fetch:  src.Customers.GetAll,
			Option: func(c models.Customer) Option { return Option{ID: c.ID, Label: c.Name, Detail: c.TaxID, Active: c.Active} },
		}),
		Employees: NewPicker(PickerConfig[models.Employee]{
			Kind:  PickerEmployees,
			Fetch: src.Employees.GetAll,
			Option: func(e models.Employee) Option {
				return Option{ID: e.ID, Label: personName(e.FirstName, e.LastName), Detail: e.Document, Active: e.Active}
			},
			ScopeKey: "cargoId",
			ScopeOf:  func(e models.Employee) int64 { return e.PositionID },
		}),
		Merchandisers: NewPicker(PickerConfig[models.Merchandiser]{
			Kind:  PickerMerchandisers,
			Fetch: src.Merchandisers.GetAll,
			Option: func(m models.Merchandiser) Option {
				return Option{ID: m.ID, Label: personName(m.FirstName, m.LastName), Detail: m.Document, Active: m.Active}
			},
			ScopeKey: "tipoMercaderistaId",
			ScopeOf:  func(m models.Merchandiser) int64 { return m.TypeID },
		}),
		Routes: NewPicker(PickerConfig[models.Route]{
			Kind:     PickerRoutes,
			Fetch:    src.Routes.GetAll,
			Option:   func(r models.Route) Option { return Option{ID: r.ID, Label: r.Name, Detail: r.Zone, Active: r.Active} },
			ScopeKey: "mercaderistaId",
			ScopeOf:  func(r models.Route) int64 { return r.MerchandiserID },
		}),
		MerchandiserTypes: NewPicker(PickerConfig[models.MerchandiserType]{
			Kind:   PickerMerchandiserTypes,
			Fetch:  src.MerchandiserTypes.GetAll,
			Option: func(t models.MerchandiserType) Option { return Option{ID: t.ID, Label: t.Name, Active: t.Active} },
		}),
	}

	r.byKind = make(map[string]OptionSource)
	for _, p := range []OptionSource{
		r.Areas, r.Sites, r.Positions, r.Roles, r.Modules, r.Dispensers,
		r.Customers, r.Employees, r.Merchandisers, r.Routes, r.MerchandiserTypes,
	} {
		r.byKind[p.Kind()] = p
	}
	return r
}

// Get 종류별 선택 목록 조회
func (r *PickerRegistry) Get(kind string) (OptionSource, bool) {
	p, ok := r.byKind[kind]
	return p, ok
}

// Kinds lists the registered kinds in alphabetical order.
func (r *PickerRegistry) Kinds() []string {
	kinds := make([]string, 0, len(r.byKind))
	for k := range r.byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Warm 모든 목록을 병렬로 미리 불러온다. 실패한 종류는 로그만 남고 나머지는 계속된다.
func (r *PickerRegistry) Warm(ctx context.Context) map[string]error {
	var (
		g      errgroup.Group
		mu     sync.Mutex
		failed = make(map[string]error)
	)
	for kind, p := range r.byKind {
		g.Go(func() error {
			if err := p.Load(ctx); err != nil {
				mu.Lock()
				failed[kind] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failed
}
