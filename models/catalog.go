package models

// Site 사업장(sede)
type Site struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	Address string `json:"direccion,omitempty"`
	Active  bool   `json:"activo"`
}

// Area 사업장 소속 부서
type Area struct {
	ID     int64  `json:"id"`
	Name   string `json:"nombre"`
	SiteID int64  `json:"sedeId,omitempty"`
	Active bool   `json:"activo"`
}

// Position 직책(cargo)
type Position struct {
	ID     int64  `json:"id"`
	Name   string `json:"nombre"`
	Active bool   `json:"activo"`
}

// Dispenser 생맥주 디스펜서(chopera)
type Dispenser struct {
	ID         int64  `json:"id"`
	Code       string `json:"codigo"`
	Name       string `json:"nombre"`
	CustomerID int64  `json:"clienteId,omitempty"`
	Active     bool   `json:"activo"`
}

// Customer 거래처(cliente)
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	TaxID   string `json:"ruc,omitempty"`
	Address string `json:"direccion,omitempty"`
	Active  bool   `json:"activo"`
}

// Employee 직원(empleado)
type Employee struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Document   string `json:"documento,omitempty"`
	PositionID int64  `json:"cargoId,omitempty"`
	Active     bool   `json:"activo"`
}

// MerchandiserType 머천다이저 유형
type MerchandiserType struct {
	ID     int64  `json:"id"`
	Name   string `json:"nombre"`
	Active bool   `json:"activo"`
}

// Merchandiser 머천다이저(mercaderista)
type Merchandiser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Document  string `json:"documento,omitempty"`
	TypeID    int64  `json:"tipoMercaderistaId,omitempty"`
	Active    bool   `json:"activo"`
}

// Route 머천다이저 방문 경로(ruta)
type Route struct {
	ID             int64  `json:"id"`
	Name           string `json:"nombre"`
	Zone           string `json:"zona,omitempty"`
	MerchandiserID int64  `json:"mercaderistaId,omitempty"`
	Active         bool   `json:"activo"`
}
