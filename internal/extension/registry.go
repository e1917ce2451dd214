package extension

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paveg/siunit/internal/errors"
	"go.uber.org/zap"
)

// Dtype is the contract a pluggable column type reports to the host.
type Dtype interface {
	DtypeName() string
	Kind() string
	NAValue() float64
	ConstructArrayType() reflect.Type
	ConstructFromString(s string) (Dtype, error)
}

// Registry maps dtype names to dtypes. The Celsius dtype is registered when the
// registry is created; nothing is registered at package load.
type Registry struct {
	mu     sync.RWMutex
	logger *zap.Logger
	dtypes map[string]Dtype
	order  []string
	// arrowNames are the extension types this registry added to arrow's global registry.
	arrowNames []string
}

// NewRegistry creates a registry holding the Celsius dtype. A nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		logger: logger,
		dtypes: make(map[string]Dtype),
	}
	// a fresh registry cannot hold a duplicate
	_ = r.Register(NewCelsiusType())
	return r
}

// Register adds a dtype under its name.
func (r *Registry) Register(d Dtype) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := d.DtypeName()
	if _, exists := r.dtypes[name]; exists {
		return errors.NewInvalidArgumentError("Register", fmt.Sprintf("dtype %q is already registered", name))
	}
	r.dtypes[name] = d
	r.order = append(r.order, name)
	r.logger.Debug("registered dtype", zap.String("name", name), zap.String("kind", d.Kind()))
	return nil
}

// Lookup returns the dtype registered under name.
func (r *Registry) Lookup(name string) (Dtype, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.dtypes[name]
	return d, ok
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ConstructFromString resolves a dtype from its declared name. Unknown names
// fail with the same message the Celsius dtype reports.
func (r *Registry) ConstructFromString(s string) (Dtype, error) {
	d, ok := r.Lookup(s)
	if !ok {
		r.logger.Debug("unknown dtype", zap.String("name", s))
		return nil, errors.NewDtypeConstructionError(TypeName, s)
	}
	return d.ConstructFromString(s)
}

// RegisterWithArrow adds every registered arrow extension type to arrow's
// process-wide registry so IPC readers can resolve it. Types already known to
// arrow are left alone.
func (r *Registry) RegisterWithArrow() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range r.order {
		ext, ok := r.dtypes[name].(arrow.ExtensionType)
		if !ok {
			continue
		}
		if arrow.GetExtensionType(ext.ExtensionName()) != nil {
			r.logger.Debug("arrow extension type already registered", zap.String("name", ext.ExtensionName()))
			continue
		}
		if err := arrow.RegisterExtensionType(ext); err != nil {
			return errors.NewInternalError("RegisterWithArrow", err)
		}
		r.arrowNames = append(r.arrowNames, ext.ExtensionName())
		r.logger.Info("registered arrow extension type", zap.String("name", ext.ExtensionName()))
	}
	return nil
}

// Close removes from arrow the extension types this registry added.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, name := range r.arrowNames {
		if err := arrow.UnregisterExtensionType(name); err != nil {
			errs = append(errs, err)
		}
	}
	r.arrowNames = nil
	if err := stderrors.Join(errs...); err != nil {
		r.logger.Warn("failed to unregister arrow extension types", zap.Error(err))
		return errors.NewInternalError("Close", err)
	}
	return nil
}
