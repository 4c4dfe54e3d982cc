package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/sirupsen/logrus"
)

var ErrUnrecognizedKey = errors.New("unrecognized routing key")

// Route handles the body of one recognized routing key.
type Route func(ctx context.Context, body []byte) error

// Dispatcher maps exact routing keys to routes. A queue bound on a wildcard
// can receive keys nobody handles; those never reach a route.
type Dispatcher struct {
	name   string
	routes map[string]Route
}

func New(name string) *Dispatcher {
	return &Dispatcher{name: name, routes: make(map[string]Route)}
}

func (d *Dispatcher) Handle(routingKey string, route Route) *Dispatcher {
	if _, exists := d.routes[routingKey]; exists {
		logrus.Warnf("[%s] route for %s registered twice, keeping the last one", d.name, routingKey)
	}
	d.routes[routingKey] = route
	return d
}

// Dispatch has the broker.Handler signature so it can be handed to a consumer directly.
func (d *Dispatcher) Dispatch(ctx context.Context, routingKey string, body []byte) error {
	route, ok := d.routes[routingKey]
	if !ok {
		return errorx.Permanent(fmt.Errorf("%w: %q on %s", ErrUnrecognizedKey, routingKey, d.name))
	}
	logrus.WithFields(logrus.Fields{"worker": d.name, "routing_key": routingKey}).Info("Handling message")
	return route(ctx, body)
}

func (d *Dispatcher) Keys() []string {
	keys := make([]string, 0, len(d.routes))
	for k := range d.routes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Decode unmarshals body into v, marking decode failures as malformed.
func Decode(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", errorx.ErrMalformedMessage, err)
	}
	return nil
}
