package formapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formrules/pkg/binder"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Validator evaluates input against a rules spec. *validator.Engine implements it.
type Validator interface {
	ValidateContext(ctx context.Context, data validator.InputData, spec validator.RulesSpec) validator.FailureReport
	Catalog() *validator.Catalog
}

// RuleSets looks up named specs. *ruleset.Registry implements it.
type RuleSets interface {
	Get(name string) (validator.RulesSpec, error)
	Names() []string
}

type handlers struct {
	engine Validator
	sets   RuleSets
	log    *slog.Logger
}

func (h *handlers) listRuleSets(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, h.sets.Names())
}

func (h *handlers) listRules(w http.ResponseWriter, _ *http.Request) {
	catalog := h.engine.Catalog()
	names := catalog.Names()
	rules := make([]RuleInfo, 0, len(names))
	for _, name := range names {
		d, _ := catalog.Lookup(name)
		rules = append(rules, RuleInfo{Name: d.Name, NeedsValue: d.NeedsComparisonValue})
	}
	writeData(w, http.StatusOK, rules)
}

func (h *handlers) validateRuleSet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	spec, err := h.sets.Get(name)
	if err != nil {
		if errors.Is(err, ruleset.ErrNotFound) {
			writeError(w, http.StatusNotFound, CodeNotFound, "rule set "+name+" does not exist")
			return
		}
		h.log.ErrorContext(r.Context(), "rule set lookup failed", logger.RuleSet(name), logger.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternal, "")
		return
	}

	data, err := binder.Input(r)
	if err != nil {
		h.bindError(w, r, err)
		return
	}

	report := h.engine.ValidateContext(r.Context(), data, spec)
	h.log.InfoContext(r.Context(), "rule set validated", logger.RuleSet(name), logger.Failures(len(report)))
	writeReport(w, report)
}

// inlineRequest carries data and rules in one JSON document.
type inlineRequest struct {
	Data  map[string]any       `json:"data"`
	Rules *validator.RulesSpec `json:"rules"`
}

func (h *handlers) validateInline(w http.ResponseWriter, r *http.Request) {
	var req inlineRequest
	if err := binder.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, validator.ErrInvalidRulesSpec) || errors.Is(err, validator.ErrDuplicateKey) {
			writeError(w, http.StatusBadRequest, CodeInvalidRules, err.Error())
			return
		}
		h.bindError(w, r, err)
		return
	}

	if req.Rules == nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRules, "rules are required")
		return
	}

	data, err := binder.Scalars(req.Data)
	if err != nil {
		h.bindError(w, r, err)
		return
	}

	report := h.engine.ValidateContext(r.Context(), data, *req.Rules)
	h.log.InfoContext(r.Context(), "inline rules validated", logger.Failures(len(report)))
	writeReport(w, report)
}

func (h *handlers) bindError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.DebugContext(r.Context(), "request body rejected", logger.Error(err))
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		writeError(w, http.StatusUnsupportedMediaType, CodeUnsupportedMediaType, err.Error())
	case errors.Is(err, binder.ErrBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, err.Error())
	default:
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
	}
}

func writeReport(w http.ResponseWriter, report validator.FailureReport) {
	if report.IsEmpty() {
		writeData(w, http.StatusOK, Result{Valid: true})
		return
	}

	failures := make([]FailureDetail, 0, len(report))
	for _, f := range report {
		failures = append(failures, FailureDetail{Field: f.Field, Rule: f.Rule, Key: f.TranslationKey()})
	}
	writeData(w, http.StatusUnprocessableEntity, Result{Valid: false, Failures: failures})
}
