// Package inventory mantiene el estado de una sesión del tablero (colección de productos
// y término de búsqueda) y expone las mutaciones y vistas derivadas.
package inventory

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/pkg/logger"
)

// Engine es dueño de la colección y del término de búsqueda de una sesión.
// Un solo escritor: no hay sincronización.
type Engine struct {
	products []entity.Product
	usedIDs  map[string]struct{} // vivos y eliminados; un ID nunca se reutiliza
	query    string

	now      func() time.Time
	newID    func() string
	log      *logger.Logger
	validate *validator.Validate
}

// Option configura el Engine.
type Option func(*engineOptions)

type engineOptions struct {
	now   func() time.Time
	newID func() string
	log   *logger.Logger
	seed  []entity.Product
}

// WithClock reemplaza el reloj usado para LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) { o.now = now }
}

// WithIDGenerator reemplaza el generador de IDs (por defecto UUID v4).
func WithIDGenerator(newID func() string) Option {
	return func(o *engineOptions) { o.newID = newID }
}

// WithLogger asigna el logger estructurado.
func WithLogger(l *logger.Logger) Option {
	return func(o *engineOptions) { o.log = l }
}

// WithProducts carga la colección inicial (se valida al construir).
func WithProducts(products []entity.Product) Option {
	return func(o *engineOptions) { o.seed = products }
}

// NewEngine construye el Engine. Falla si la colección inicial viola alguna invariante.
func NewEngine(opts ...Option) (*Engine, error) {
	o := engineOptions{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		products: make([]entity.Product, 0, len(o.seed)),
		usedIDs:  make(map[string]struct{}, len(o.seed)),
		now:      o.now,
		newID:    o.newID,
		log:      o.log,
		validate: newValidator(),
	}
	for _, p := range o.seed {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("producto inicial %q: %w", p.ID, err)
		}
		if _, dup := e.usedIDs[p.ID]; dup {
			return nil, fmt.Errorf("producto inicial %q: %w", p.ID, domain.ErrDuplicate)
		}
		if p.LastUpdated.IsZero() {
			p.LastUpdated = e.today()
		} else {
			p.LastUpdated = entity.DateOf(p.LastUpdated)
		}
		e.usedIDs[p.ID] = struct{}{}
		e.products = append(e.products, p)
	}
	return e, nil
}

// Add agrega un producto al final de la colección.
func (e *Engine) Add(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := e.check(in); err != nil {
		e.log.Warn().Err(err).Msg("producto rechazado")
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = e.newID()
	}
	if _, used := e.usedIDs[id]; used {
		err := fmt.Errorf("producto %q: %w", id, domain.ErrDuplicate)
		e.log.Warn().Err(err).Str("product_id", id).Msg("producto rechazado")
		return nil, err
	}
	p := entity.Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Price:       in.Price,
		LastUpdated: e.today(),
	}
	if err := p.Validate(); err != nil {
		e.log.Warn().Err(err).Msg("producto rechazado")
		return nil, err
	}
	e.usedIDs[id] = struct{}{}
	e.products = append(e.products, p)
	e.log.Debug().Str("product_id", id).Int("stock", p.Stock).Msg("producto agregado")
	return toProductResponse(p), nil
}

// Edit reemplaza stock, precio y/o categoría de un producto existente.
// Si algo falla no se aplica ningún cambio.
func (e *Engine) Edit(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	i := e.indexOf(id)
	if i < 0 {
		err := &domain.NotFoundError{ID: id}
		e.log.Warn().Err(err).Str("product_id", id).Msg("edición rechazada")
		return nil, err
	}
	if err := e.check(in); err != nil {
		e.log.Warn().Err(err).Str("product_id", id).Msg("edición rechazada")
		return nil, err
	}
	p := e.products[i]
	touched := false
	if in.Stock != nil {
		p.Stock = *in.Stock
		touched = true
	}
	if in.Price != nil {
		p.Price = *in.Price
		touched = true
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if err := p.Validate(); err != nil {
		e.log.Warn().Err(err).Str("product_id", id).Msg("edición rechazada")
		return nil, err
	}
	// LastUpdated no retrocede aunque el reloj lo haga.
	if today := e.today(); touched && today.After(p.LastUpdated) {
		p.LastUpdated = today
	}
	e.products[i] = p
	e.log.Debug().Str("product_id", id).Msg("producto editado")
	return toProductResponse(p), nil
}

// Delete elimina un producto; su ID queda retirado para la sesión.
func (e *Engine) Delete(id string) error {
	i := e.indexOf(id)
	if i < 0 {
		err := &domain.NotFoundError{ID: id}
		e.log.Warn().Err(err).Str("product_id", id).Msg("eliminación rechazada")
		return err
	}
	e.products = slices.Delete(e.products, i, i+1)
	e.log.Debug().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// SetQuery fija el término de búsqueda de la vista filtrada.
func (e *Engine) SetQuery(q string) { e.query = q }

// Query devuelve el término de búsqueda actual.
func (e *Engine) Query() string { return e.query }

// Products devuelve una copia de la colección en orden de inserción.
func (e *Engine) Products() []entity.Product {
	out := make([]entity.Product, len(e.products))
	copy(out, e.products)
	return out
}

// Get obtiene un producto por ID.
func (e *Engine) Get(id string) (*dto.ProductResponse, error) {
	i := e.indexOf(id)
	if i < 0 {
		return nil, &domain.NotFoundError{ID: id}
	}
	return toProductResponse(e.products[i]), nil
}

func (e *Engine) indexOf(id string) int {
	for i := range e.products {
		if e.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) today() time.Time {
	return entity.DateOf(e.now())
}
