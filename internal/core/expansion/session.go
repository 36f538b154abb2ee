package expansion

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

// Session holds the state of one template instantiation: chosen options, anchor date, the
// projected task list and the operator's exclusions. It is owned by a single operator and is
// not safe for concurrent use.
//
// Every change to the anchor date or to an option recomputes the projection and clears the
// exclusions in the same call, so exclusions never refer to a stale projection.
type Session struct {
	template  domain.TaskTemplate
	items     []Item
	anchor    time.Time
	hasAnchor bool
	options   map[string]domain.OptionValue
	projected []ProjectedTask
	excluded  map[string]struct{}
	closed    bool
}

func NewSession(template domain.TaskTemplate) *Session {
	items := make([]Item, 0, len(template.Tasks))
	for _, task := range template.Tasks {
		items = append(items, Item{Key: uuid.NewString(), Blueprint: task})
	}
	s := &Session{
		template: template,
		items:    items,
		options:  make(map[string]domain.OptionValue),
		excluded: make(map[string]struct{}),
	}
	return s
}

func (s *Session) Template() domain.TaskTemplate {
	return s.template
}

func (s *Session) SetAnchorDate(date time.Time) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.anchor = domain.TruncateDate(date)
	s.hasAnchor = true
	s.recompute()
	return nil
}

func (s *Session) AnchorDate() (time.Time, bool) {
	return s.anchor, s.hasAnchor
}

func (s *Session) SetOption(key string, value domain.OptionValue) error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := CheckOption(s.template.OptionsSchema, key, value); err != nil {
		return err
	}
	s.options[key] = value
	s.recompute()
	return nil
}

func (s *Session) ClearOption(key string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if _, ok := s.template.OptionsSchema.Properties[key]; !ok {
		return domain.NewOptionError(key, domain.ErrUnknownOption)
	}
	delete(s.options, key)
	s.recompute()
	return nil
}

func (s *Session) Options() map[string]domain.OptionValue {
	return maps.Clone(s.options)
}

// Projected returns the resolved, dated task list before exclusions.
func (s *Session) Projected() []ProjectedTask {
	return slices.Clone(s.projected)
}

// Exclude hides the task at index of the current projection. Excluding twice is a no-op.
func (s *Session) Exclude(index int) error {
	key, err := s.keyAt(index)
	if err != nil {
		return err
	}
	s.excluded[key] = struct{}{}
	return nil
}

// Restore brings back the task at index of the current projection.
func (s *Session) Restore(index int) error {
	key, err := s.keyAt(index)
	if err != nil {
		return err
	}
	delete(s.excluded, key)
	return nil
}

func (s *Session) RestoreAll() {
	clear(s.excluded)
}

func (s *Session) IsExcluded(index int) bool {
	key, err := s.keyAt(index)
	if err != nil {
		return false
	}
	_, ok := s.excluded[key]
	return ok
}

// Excluded returns the excluded positions of the current projection in ascending order.
func (s *Session) Excluded() []int {
	indices := make([]int, 0, len(s.excluded))
	for i, task := range s.projected {
		if _, ok := s.excluded[task.Key]; ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// FinalTasks is the projection without the excluded tasks, in projection order.
func (s *Session) FinalTasks() []ProjectedTask {
	out := make([]ProjectedTask, 0, len(s.projected))
	for _, task := range s.projected {
		if _, ok := s.excluded[task.Key]; ok {
			continue
		}
		out = append(out, task)
	}
	return out
}

// Ready reports why the session cannot be committed yet, or nil.
func (s *Session) Ready() error {
	if s.closed {
		return ErrSessionClosed
	}
	if !s.hasAnchor {
		return ErrAnchorDateRequired
	}
	if missing := MissingRequired(s.template.OptionsSchema, s.options); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredOptions, strings.Join(missing, ", "))
	}
	if len(s.FinalTasks()) == 0 {
		return ErrNoFinalTasks
	}
	return nil
}

// Commit hands the final tasks to committer. The session is closed on success; on failure it
// is left exactly as it was so the caller can retry.
func (s *Session) Commit(ctx context.Context, committer Committer) (CommitResult, error) {
	if err := s.Ready(); err != nil {
		return CommitResult{}, err
	}
	result, err := committer.Commit(ctx, s.template, s.FinalTasks())
	if err != nil {
		return CommitResult{}, err
	}
	s.Close()
	return result, nil
}

// Close discards all session state. Nothing is persisted.
func (s *Session) Close() {
	s.closed = true
	s.hasAnchor = false
	s.anchor = time.Time{}
	clear(s.options)
	clear(s.excluded)
	s.projected = nil
}

func (s *Session) Closed() bool {
	return s.closed
}

func (s *Session) recompute() {
	clear(s.excluded)
	if !s.hasAnchor {
		s.projected = nil
		return
	}
	active := Resolve(s.items, s.template.OptionsSchema, s.options)
	s.projected = Project(active, s.anchor)
}

func (s *Session) keyAt(index int) (string, error) {
	if s.closed {
		return "", ErrSessionClosed
	}
	if index < 0 || index >= len(s.projected) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return s.projected[index].Key, nil
}
