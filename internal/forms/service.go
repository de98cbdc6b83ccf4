package forms

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
)

// ValidationError lists the invalid fields of a payload by their JSON name
// and the rule they broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" ("+e.Fields[name]+")")
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// Service captures submissions: it validates the payload, stores it and
// hands it to the processor. Processor failures are recorded on the
// submission and never returned to the caller.
type Service struct {
	store     *Store
	processor Processor
	validate  *validator.Validate
	logger    *log.Logger
}

func NewService(store *Store, processor Processor, logger *log.Logger) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Service{store: store, processor: processor, validate: v, logger: logger}
}

// SubmitConsultation captures a consultation request.
func (s *Service) SubmitConsultation(ctx context.Context, c Consultation, remoteAddr string) (*Submission, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Service = strings.TrimSpace(c.Service)
	c.Message = strings.TrimSpace(c.Message)
	if err := s.check(c); err != nil {
		return nil, err
	}
	return s.capture(ctx, &Submission{
		Kind:       KindConsultation,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Service:    c.Service,
		Message:    c.Message,
		RemoteAddr: remoteAddr,
	})
}

// SubmitSignup captures a newsletter or free book signup.
func (s *Service) SubmitSignup(ctx context.Context, kind Kind, sg Signup, remoteAddr string) (*Submission, error) {
	if kind != KindNewsletter && kind != KindGiveaway {
		return nil, fmt.Errorf("%s is not a signup form", kind)
	}
	sg.Email = strings.TrimSpace(sg.Email)
	if err := s.check(sg); err != nil {
		return nil, err
	}
	return s.capture(ctx, &Submission{Kind: kind, Email: sg.Email, RemoteAddr: remoteAddr})
}

func (s *Service) check(payload any) error {
	err := s.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating payload: %w", err)
	}
	ve := &ValidationError{Fields: map[string]string{}}
	for _, fe := range verrs {
		ve.Fields[fe.Field()] = fe.Tag()
	}
	return ve
}

func (s *Service) capture(ctx context.Context, sub *Submission) (*Submission, error) {
	if err := s.store.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("storing submission: %w", err)
	}

	status, errMsg := StatusProcessed, ""
	if err := s.processor.Process(ctx, *sub); err != nil {
		s.logger.Error("processing submission", "id", sub.ID, "kind", sub.Kind, "err", err)
		status, errMsg = StatusFailed, err.Error()
	}
	if err := s.store.MarkStatus(ctx, sub.ID, status, errMsg); err != nil {
		s.logger.Warn("recording submission status", "id", sub.ID, "err", err)
	}
	sub.Status = status
	sub.Error = errMsg
	return sub, nil
}
