package dto

// Respuesta es el sobre uniforme de toda la API:
// {success, data?, message?, error?, count?, pagination?, filtros?}.
type Respuesta struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Filtros    interface{} `json:"filtros,omitempty"`
}

// OK respuesta exitosa con datos.
func OK(data interface{}) Respuesta {
	return Respuesta{Success: true, Data: data}
}

// OKMensaje respuesta exitosa con mensaje (con o sin datos).
func OKMensaje(message string, data interface{}) Respuesta {
	return Respuesta{Success: true, Message: message, Data: data}
}

// OKPaginado respuesta exitosa con metadatos de paginación.
func OKPaginado(data interface{}, p Pagination) Respuesta {
	return Respuesta{Success: true, Data: data, Pagination: &p}
}

// OKConteo respuesta exitosa de listados sin paginar (incluye count).
func OKConteo(data interface{}, count int) Respuesta {
	return Respuesta{Success: true, Data: data, Count: &count}
}

// Fallo respuesta de error.
func Fallo(mensaje string) Respuesta {
	return Respuesta{Success: false, Error: mensaje}
}

// Pagination metadatos de página: 1-based, con banderas de navegación.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination calcula los metadatos a partir del total de filas.
func NewPagination(page, limit, totalItems int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// PageRequest parámetros de paginación de query string.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalizar aplica los valores por defecto (page=1 y el límite indicado;
// los listados usan 10 salvo el historial, que usa 12).
func (p *PageRequest) Normalizar(limitPorDefecto int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = limitPorDefecto
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset convierte la página 1-based a offset SQL.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
