package odata

import (
	"github.com/tidwall/gjson"
)

// Record — JSON-объект из ответа upstream.
//
// Все методы доступа безопасны для отсутствующих полей: отсутствие
// и null дают nil (или нулевое значение), паники нет.
type Record struct {
	res gjson.Result
}

// ParseRecord разбирает JSON-объект в Record.
func ParseRecord(raw string) Record {
	return Record{res: gjson.Parse(raw)}
}

func (r Record) field(name string) (gjson.Result, bool) {
	if !r.res.IsObject() {
		return gjson.Result{}, false
	}
	v := r.res.Get(gjson.Escape(name))
	if !v.Exists() || v.Type == gjson.Null {
		return gjson.Result{}, false
	}
	return v, true
}

// String возвращает строковое представление поля или nil.
func (r Record) String(name string) *string {
	v, ok := r.field(name)
	if !ok {
		return nil
	}
	s := v.String()
	return &s
}

// Int возвращает целое значение поля или nil.
func (r Record) Int(name string) *int {
	v, ok := r.field(name)
	if !ok {
		return nil
	}
	n := int(v.Int())
	return &n
}

// IntOr возвращает целое значение поля или def.
func (r Record) IntOr(name string, def int) int {
	if n := r.Int(name); n != nil {
		return *n
	}
	return def
}

// Bool возвращает булево значение поля, false при отсутствии.
func (r Record) Bool(name string) bool {
	v, ok := r.field(name)
	if !ok {
		return false
	}
	return v.Bool()
}

// List возвращает вложенные объекты поля-массива в исходном порядке.
// Элементы, не являющиеся объектами, пропускаются.
func (r Record) List(name string) []Record {
	v, ok := r.field(name)
	if !ok || !v.IsArray() {
		return nil
	}
	var out []Record
	for _, item := range v.Array() {
		if item.IsObject() {
			out = append(out, Record{res: item})
		}
	}
	return out
}

// Raw возвращает исходный JSON записи.
func (r Record) Raw() string {
	return r.res.Raw
}
