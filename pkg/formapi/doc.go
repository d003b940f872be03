// Package formapi exposes the validation engine over HTTP with chi.
//
// Clients either post a form to a named rule set
// (POST /rulesets/{name}/validate) or send data and rules together as JSON
// (POST /validate). A valid submission answers 200 with {"data":{"valid":true}};
// failures answer 422 with the failed checks and their translation keys:
//
//	{"data":{"valid":false,"failures":[{"field":"age","rule":"greater_than","key":"validation.greater_than"}]}}
//
// Every response carries X-Request-ID and every request is logged with it.
package formapi
