package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/kode4food/brig/internal/n8n"
	"github.com/kode4food/brig/pkg/api"
)

type (
	// Dispatcher routes envelope methods to their validator and client
	// operation. The table is fixed at construction; there is no
	// reflective lookup
	Dispatcher struct {
		methods map[string]operation
	}

	// operation decodes and validates a parameter bag, then performs
	// the bound client call
	operation func(context.Context, api.Params) (any, error)

	validator interface {
		Validate() error
	}
)

var (
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrInvalidParams     = errors.New("invalid params")
)

// NewDispatcher binds the six supported methods to their n8n client
// operations
func NewDispatcher(client *n8n.Client) *Dispatcher {
	return &Dispatcher{
		methods: map[string]operation{
			api.MethodListWorkflows:      bind(client.ListWorkflows),
			api.MethodCreateWorkflow:     bind(client.CreateWorkflow),
			api.MethodUpdateWorkflow:     bind(client.UpdateWorkflow),
			api.MethodDeleteWorkflow:     bind(client.DeleteWorkflow),
			api.MethodRunWorkflow:        bind(client.RunWorkflow),
			api.MethodGetExecutionStatus: bind(client.GetExecutionStatus),
		},
	}
}

// Supports reports whether the method name is recognized
func (d *Dispatcher) Supports(method string) bool {
	_, ok := d.methods[method]
	return ok
}

// Methods returns the supported method names in discovery order
func (d *Dispatcher) Methods() []string {
	return api.Methods()
}

// Dispatch validates the parameter bag for method and invokes the
// bound operation. Validation failures never reach the network
func (d *Dispatcher) Dispatch(
	ctx context.Context, method string, params api.Params,
) (any, error) {
	op, ok := d.methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	return op(ctx, params)
}

// bind pairs a parameter record with its client call. Decode or
// validation failures are wrapped in ErrInvalidParams so the handler
// can classify them without inspecting the cause
func bind[T any, PT interface {
	*T
	validator
}](call func(context.Context, PT) (any, error)) operation {
	return func(ctx context.Context, params api.Params) (any, error) {
		p, err := api.DecodeParams[T](params)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
		pt := PT(p)
		if err := pt.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
		return call(ctx, pt)
	}
}
