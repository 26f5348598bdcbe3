// Package tracelog adapts search events to structured logging. It is
// wired behind the CLI's verbose flag; the engine itself stays silent.
package tracelog

import (
	"github.com/sirupsen/logrus"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Tracer logs every search event at debug level with structured fields.
type Tracer struct {
	log logrus.FieldLogger
}

// New creates a tracer writing to the given logger.
func New(log logrus.FieldLogger) *Tracer {
	return &Tracer{log: log}
}

var _ csp.Tracer = (*Tracer)(nil)

func (t *Tracer) Assign(depth int, name string, value csp.Value) {
	t.log.WithFields(logrus.Fields{
		"depth":    depth,
		"variable": name,
		"value":    value,
	}).Debug("assign")
}

func (t *Tracer) Unassign(depth int, name string) {
	t.log.WithFields(logrus.Fields{
		"depth":    depth,
		"variable": name,
	}).Debug("backtrack")
}

func (t *Tracer) Prune(owner, neighbor string, removed []csp.Value) {
	t.log.WithFields(logrus.Fields{
		"owner":    owner,
		"neighbor": neighbor,
		"removed":  len(removed),
	}).Debug("prune")
}

func (t *Tracer) Wipeout(owner, neighbor string) {
	t.log.WithFields(logrus.Fields{
		"owner":    owner,
		"neighbor": neighbor,
	}).Debug("domain wipe-out")
}

func (t *Tracer) Restore(owner, neighbor string, restored []csp.Value) {
	t.log.WithFields(logrus.Fields{
		"owner":    owner,
		"neighbor": neighbor,
		"restored": len(restored),
	}).Debug("restore")
}

func (t *Tracer) Solution(assignment csp.Assignment) {
	t.log.WithField("variables", len(assignment)).Debug("solution found")
}
