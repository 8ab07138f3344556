package contract

import (
	"bytes"
	"sort"
	"sync"

	"github.com/spikeekips/chacharand/abi"
)

// Handler takes a whole call envelope and returns the reply envelope.
type Handler interface {
	Handle(call []byte) ([]byte, error)
}

// Method handles a call whose selector is already matched. It receives the
// whole call envelope, selector included.
type Method func(call []byte) ([]byte, error)

type route struct {
	signature string
	method    Method
}

// Router dispatches calls by their 4-byte selector.
type Router struct {
	sync.RWMutex
	routes map[abi.Selector]route
}

func NewRouter() *Router {
	return &Router{
		routes: map[abi.Selector]route{},
	}
}

func (r *Router) Register(signature string, method Method) error {
	selector, err := abi.NewSelector(signature)
	if err != nil {
		return err
	}

	r.Lock()
	defer r.Unlock()

	if found, exists := r.routes[selector]; exists {
		return MethodAlreadyRegisteredError.Newf(
			"signature=%q selector=%s registered=%q", signature, selector, found.signature,
		)
	}

	r.routes[selector] = route{signature: signature, method: method}

	return nil
}

// Signatures returns the registered signatures ordered by selector.
func (r *Router) Signatures() []string {
	r.RLock()
	defer r.RUnlock()

	selectors := make([]abi.Selector, 0, len(r.routes))
	for s := range r.routes {
		selectors = append(selectors, s)
	}

	sort.Slice(selectors, func(i, j int) bool {
		return bytes.Compare(selectors[i][:], selectors[j][:]) < 0
	})

	signatures := make([]string, len(selectors))
	for i, s := range selectors {
		signatures[i] = r.routes[s].signature
	}

	return signatures
}

func (r *Router) Route(call []byte) ([]byte, error) {
	selector, _, err := abi.SplitCall(call)
	if err != nil {
		return nil, err
	}

	r.RLock()
	found, exists := r.routes[selector]
	r.RUnlock()

	if !exists {
		return nil, abi.UnknownSelectorError.Newf("selector=%s", selector)
	}

	return found.method(call)
}

func (r *Router) Handle(call []byte) ([]byte, error) {
	return r.Route(call)
}
