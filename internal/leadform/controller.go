package leadform

import (
	"context"
	"errors"
	"strings"
	"sync"

	"hersalon/pkg/types"
)

var (
	// ErrNotSubmittable is returned when the form fails validation or a
	// submission is already in flight. No request is made.
	ErrNotSubmittable = errors.New("application is not submittable")
	ErrClosed         = errors.New("application form is closed")
)

// Submitter delivers an application to wherever leads are collected.
type Submitter interface {
	Submit(ctx context.Context, req types.ApplicationRequest) error
}

// Snapshot is a consistent read of a controller for rendering.
type Snapshot struct {
	Request   types.ApplicationRequest
	Status    types.SubmissionStatus
	CanSubmit bool
}

// Controller owns the state of one open application form: the field values
// and the status of the current submission attempt. It lives from the moment
// the form is opened until Close.
type Controller struct {
	mu     sync.Mutex
	req    types.ApplicationRequest
	status types.SubmissionStatus
	closed bool

	submitter Submitter

	ctx    context.Context
	cancel context.CancelFunc
}

func NewController(ctx context.Context, submitter Submitter) *Controller {
	ctx, cancel := context.WithCancel(ctx)
	return &Controller{
		status:    types.SubmissionIdle,
		submitter: submitter,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// UpdateField replaces the value of one field. canAttend takes a checkbox
// value; unknown fields are ignored.
func (c *Controller) UpdateField(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case FieldFullName:
		c.req.FullName = value
	case FieldPhone:
		c.req.Phone = value
	case FieldEmail:
		c.req.Email = value
	case FieldCanAttend:
		c.req.CanAttend = checked(value)
	}
}

func (c *Controller) SetCanAttend(v bool) {
	c.mu.Lock()
	c.req.CanAttend = v
	c.mu.Unlock()
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

func (c *Controller) Status() types.SubmissionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CanSubmit(c.req, c.status)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Request:   c.req,
		Status:    c.status,
		CanSubmit: CanSubmit(c.req, c.status),
	}
}

// Submit sends the current application and waits for the outcome. The status
// is sent or error afterwards. The returned error is informational only; the
// outcome is read through Status.
func (c *Controller) Submit(ctx context.Context) error {
	req, err := c.begin()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.ctx, cancel)
	defer stop()

	err = c.submitter.Submit(ctx, req)
	c.finish(err)
	return err
}

// Go starts a submission and returns as soon as the status is sending. The
// call runs until it settles or the controller is closed, then done (if
// non-nil) receives its error. Go reports false when nothing was started.
func (c *Controller) Go(done func(error)) bool {
	req, err := c.begin()
	if err != nil {
		return false
	}

	go func() {
		err := c.submitter.Submit(c.ctx, req)
		c.finish(err)
		if done != nil {
			done(err)
		}
	}()

	return true
}

// Close disposes the controller. An in-flight submission is cancelled and its
// result is dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}

func (c *Controller) begin() (types.ApplicationRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return types.ApplicationRequest{}, ErrClosed
	}

	if !CanSubmit(c.req, c.status) {
		return types.ApplicationRequest{}, ErrNotSubmittable
	}

	c.status = types.SubmissionSending
	return c.req, nil
}

func (c *Controller) finish(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if err != nil {
		c.status = types.SubmissionError
		return
	}
	c.status = types.SubmissionSent
}
