package server

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	resumenservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/resumen"
)

// optionalRef is an optional reference field that remembers whether it was
// present in the request at all. Absent means leave the stored reference
// untouched; an explicit null (or an empty form value) clears it.
type optionalRef struct {
	set   bool
	value *int
}

func (o *optionalRef) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, []byte("null")) {
		o.value = nil
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

// ref converts to the **int the services consume.
func (o *optionalRef) ref() **int {
	if !o.set {
		return nil
	}
	return &o.value
}

// formValues wraps a parsed form with the small binding helpers the request
// DTOs need. Absent keys bind to nil so form PATCHes stay partial, the same
// as omitted JSON fields.
type formValues struct {
	url.Values
}

func (f formValues) str(key string) string {
	return strings.TrimSpace(f.Get(key))
}

func (f formValues) strPtr(key string) *string {
	if !f.Has(key) {
		return nil
	}
	v := strings.TrimSpace(f.Get(key))
	return &v
}

// horas binds an hours field leniently: unparseable input counts as 0.
func (f formValues) horas(key string) float64 {
	return resumenservice.ParseHoras(f.Get(key))
}

func (f formValues) horasPtr(key string) *float64 {
	if !f.Has(key) {
		return nil
	}
	v := resumenservice.ParseHoras(f.Get(key))
	return &v
}

func (f formValues) intPtr(key string) *int {
	if !f.Has(key) {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(f.Get(key)))
	if err != nil {
		return nil
	}
	return &v
}

// ref binds an optional reference field: absent means leave untouched,
// empty means clear the reference.
func (f formValues) ref(key string) optionalRef {
	if !f.Has(key) {
		return optionalRef{}
	}
	return optionalRef{set: true, value: f.intPtr(key)}
}
