// Package ddl generates CREATE TABLE statements for the cross-vendor
// schema across the five dialects spec.md §6.1 names (postgresql, mysql,
// sqlite, oracle, sqlserver), reflecting over a schema.Record's Go struct
// shape rather than hand-maintaining one CREATE TABLE string per entity
// per dialect.
package ddl

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/sparecores/sc-crawler/pkg/schema"
)

// Dialects lists the supported engine_to_dialect targets, mirroring
// original_source/sc_crawler/cli.py's engine_to_dialect map.
var Dialects = []string{"postgresql", "mysql", "sqlite", "oracle", "sqlserver"}

func ValidDialect(d string) bool {
	for _, x := range Dialects {
		if x == d {
			return true
		}
	}
	return false
}

// Column is one reflected column of an entity.
type Column struct {
	Name     string
	GoType   reflect.Type
	Nullable bool
	IsPK     bool
}

var timeType = reflect.TypeOf(time.Time{})

// Columns reflects over rec's (possibly embedded) struct fields in
// declaration order, using each field's `json` tag as the column name.
// Anonymous embedded structs (Meta, PriceFields, and an SCD companion's
// embedded base entity) are flattened; non-anonymous struct fields
// (JSONColumn[T]) are treated as opaque JSON leaves.
func Columns(rec schema.Record) []Column {
	pks := rec.PrimaryKeys()
	var cols []Column
	seen := map[string]bool{}

	var walk func(t reflect.Type)
	walk = func(t reflect.Type) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				walk(f.Type)
				continue
			}
			tag := f.Tag.Get("json")
			name := strings.Split(tag, ",")[0]
			if name == "" || name == "-" || seen[name] {
				continue
			}
			seen[name] = true
			goType := f.Type
			nullable := goType.Kind() == reflect.Ptr
			if nullable {
				goType = goType.Elem()
			}
			_, isPK := pks[name]
			cols = append(cols, Column{Name: name, GoType: goType, Nullable: nullable, IsPK: isPK})
		}
	}
	walk(reflect.TypeOf(rec))
	return cols
}

// pkNames returns the primary-key column names in Columns() order, which
// always matches struct declaration order and so is stable across calls.
func pkNames(cols []Column) []string {
	var names []string
	for _, c := range cols {
		if c.IsPK {
			names = append(names, c.Name)
		}
	}
	return names
}

// PKColumns returns rec's primary-key column names.
func PKColumns(rec schema.Record) []string {
	return pkNames(Columns(rec))
}

var valuerType = reflect.TypeOf((*driver.Valuer)(nil)).Elem()

// Values reflects over rec in the same field order as Columns, returning
// one driver-ready value per column: JSONColumn[T] and other Valuer
// implementations are resolved via Value(), plain slices/maps are
// JSON-marshaled, and everything else (strings, enums, numbers, bools,
// time.Time, and pointers) is passed through for database/sql's default
// parameter converter to handle.
func Values(rec schema.Record) []interface{} {
	var vals []interface{}
	seen := map[string]bool{}

	var walk func(v reflect.Value)
	walk = func(v reflect.Value) {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fv := v.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				walk(fv)
				continue
			}
			tag := f.Tag.Get("json")
			name := strings.Split(tag, ",")[0]
			if name == "" || name == "-" || seen[name] {
				continue
			}
			seen[name] = true
			vals = append(vals, columnValue(fv))
		}
	}
	walk(reflect.ValueOf(rec))
	return vals
}

func columnValue(v reflect.Value) interface{} {
	if v.Type() == timeType {
		return v.Interface()
	}
	if v.Type().Implements(valuerType) {
		dv, err := v.Interface().(driver.Valuer).Value()
		if err != nil {
			return nil
		}
		return dv
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return nil
		}
		return string(b)
	default:
		return v.Interface()
	}
}

// sqlType maps a reflected Go type to a dialect's column type. Enums and
// plain strings share reflect.Kind() == String, so both render as text —
// Validate() on the schema side is what actually constrains enum values;
// the database only needs to store the text.
func sqlType(dialect string, t reflect.Type) string {
	if t == timeType {
		switch dialect {
		case "postgresql":
			return "TIMESTAMP"
		case "mysql":
			return "DATETIME"
		case "oracle":
			return "TIMESTAMP"
		case "sqlserver":
			return "DATETIME2"
		default:
			return "TEXT"
		}
	}
	switch t.Kind() {
	case reflect.String:
		switch dialect {
		case "oracle":
			return "VARCHAR2(4000)"
		case "sqlserver":
			return "NVARCHAR(MAX)"
		default:
			return "TEXT"
		}
	case reflect.Int, reflect.Int32, reflect.Int64:
		switch dialect {
		case "oracle":
			return "NUMBER(19)"
		default:
			return "INTEGER"
		}
	case reflect.Float32, reflect.Float64:
		switch dialect {
		case "postgresql":
			return "DOUBLE PRECISION"
		case "mysql":
			return "DOUBLE"
		case "oracle":
			return "BINARY_DOUBLE"
		case "sqlserver":
			return "FLOAT"
		default:
			return "REAL"
		}
	case reflect.Bool:
		switch dialect {
		case "oracle":
			return "NUMBER(1)"
		case "mysql":
			return "TINYINT(1)"
		default:
			return "BOOLEAN"
		}
	case reflect.Slice, reflect.Map, reflect.Struct:
		// JSON-valued columns: []string, []Cpu/Gpu/Disk/PriceTier,
		// map[string]interface{}, and scfields.JSONColumn[T] wrappers all
		// serialize to a single text blob (see scfields.JSONColumn).
		switch dialect {
		case "postgresql":
			return "JSONB"
		case "mysql":
			return "JSON"
		case "sqlserver":
			return "NVARCHAR(MAX)"
		case "oracle":
			return "CLOB"
		default:
			return "TEXT"
		}
	default:
		return "TEXT"
	}
}

// foreignKey is one (possibly composite) reference from a table's columns
// to another table's primary key.
type foreignKey struct {
	Columns    []string
	Referenced string
	RefColumns []string
}

// foreignKeys lists every cross-table reference in the schema, ported
// from original_source/src/sc_crawler/tables.py and schemas.py's
// ForeignKeyConstraint/foreign_key declarations (e.g. Zone.__table_args__,
// ServerPrice.__table_args__, the benchmark_score alembic migration).
// Keyed by TableName(); CreateTable consults this to emit named FOREIGN
// KEY constraints per spec.md §6.1.
var foreignKeys = map[string][]foreignKey{
	"vendor": {
		{Columns: []string{"country_id"}, Referenced: "country", RefColumns: []string{"country_id"}},
	},
	"vendor_compliance_link": {
		{Columns: []string{"vendor_id"}, Referenced: "vendor", RefColumns: []string{"vendor_id"}},
		{Columns: []string{"compliance_framework_id"}, Referenced: "compliance_framework", RefColumns: []string{"compliance_framework_id"}},
	},
	"region": {
		{Columns: []string{"vendor_id"}, Referenced: "vendor", RefColumns: []string{"vendor_id"}},
		{Columns: []string{"country_id"}, Referenced: "country", RefColumns: []string{"country_id"}},
	},
	"zone": {
		{Columns: []string{"vendor_id", "region_id"}, Referenced: "region", RefColumns: []string{"vendor_id", "region_id"}},
	},
	"storage": {
		{Columns: []string{"vendor_id"}, Referenced: "vendor", RefColumns: []string{"vendor_id"}},
	},
	"server": {
		{Columns: []string{"vendor_id"}, Referenced: "vendor", RefColumns: []string{"vendor_id"}},
	},
	"server_price": {
		{Columns: []string{"vendor_id", "region_id"}, Referenced: "region", RefColumns: []string{"vendor_id", "region_id"}},
		{Columns: []string{"vendor_id", "region_id", "zone_id"}, Referenced: "zone", RefColumns: []string{"vendor_id", "region_id", "zone_id"}},
		{Columns: []string{"vendor_id", "server_id"}, Referenced: "server", RefColumns: []string{"vendor_id", "server_id"}},
	},
	"storage_price": {
		{Columns: []string{"vendor_id", "region_id"}, Referenced: "region", RefColumns: []string{"vendor_id", "region_id"}},
		{Columns: []string{"vendor_id", "storage_id"}, Referenced: "storage", RefColumns: []string{"vendor_id", "storage_id"}},
	},
	"traffic_price": {
		{Columns: []string{"vendor_id", "region_id"}, Referenced: "region", RefColumns: []string{"vendor_id", "region_id"}},
	},
	"ipv4_price": {
		{Columns: []string{"vendor_id", "region_id"}, Referenced: "region", RefColumns: []string{"vendor_id", "region_id"}},
	},
	"benchmark_score": {
		{Columns: []string{"vendor_id", "server_id"}, Referenced: "server", RefColumns: []string{"vendor_id", "server_id"}},
		{Columns: []string{"benchmark_id"}, Referenced: "benchmark", RefColumns: []string{"benchmark_id"}},
	},
}

func quoteIdent(dialect, name string) string {
	switch dialect {
	case "mysql":
		return "`" + name + "`"
	case "sqlserver":
		return "[" + name + "]"
	default:
		return name
	}
}

// CreateTable renders a CREATE TABLE IF NOT EXISTS statement for rec in
// the given dialect, naming the primary key constraint `pk_<table>` and
// each FOREIGN KEY constraint listed for the table in foreignKeys via
// ForeignKeyName. No column comments are emitted in any dialect.
func CreateTable(dialect string, rec schema.Record) string {
	cols := Columns(rec)
	rawTable := rec.TableName()
	table := quoteIdent(dialect, rawTable)

	var lines []string
	for _, c := range cols {
		colType := sqlType(dialect, c.GoType)
		null := "NOT NULL"
		if c.Nullable && !c.IsPK {
			null = "NULL"
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s", quoteIdent(dialect, c.Name), colType, null))
	}

	pks := pkNames(cols)
	sort.Strings(pks) // deterministic constraint column order across runs
	if len(pks) > 0 {
		quoted := make([]string, len(pks))
		for i, p := range pks {
			quoted[i] = quoteIdent(dialect, p)
		}
		lines = append(lines, fmt.Sprintf("  CONSTRAINT %s PRIMARY KEY (%s)",
			quoteIdent(dialect, "pk_"+rawTable), strings.Join(quoted, ", ")))
	}

	for _, fk := range foreignKeys[rawTable] {
		cols := make([]string, len(fk.Columns))
		refCols := make([]string, len(fk.RefColumns))
		for i, c := range fk.Columns {
			cols[i] = quoteIdent(dialect, c)
		}
		for i, c := range fk.RefColumns {
			refCols[i] = quoteIdent(dialect, c)
		}
		lines = append(lines, fmt.Sprintf("  CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
			quoteIdent(dialect, ForeignKeyName(rawTable, strings.Join(fk.Columns, "_"), fk.Referenced)),
			strings.Join(cols, ", "), quoteIdent(dialect, fk.Referenced), strings.Join(refCols, ", ")))
	}

	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", table, strings.Join(lines, ",\n"))
	return stmt
}

// ForeignKeyName returns the fk_<table>_<col>_<referenced> identifier
// spec.md §6.1 requires for foreign key constraints.
func ForeignKeyName(table, column, referenced string) string {
	return fmt.Sprintf("fk_%s_%s_%s", table, column, referenced)
}

// ScanRows reads *sql.Rows whose columns are Columns(rec) (in that order,
// e.g. from an UPDATE ... RETURNING built with the same column list) back
// into concrete T values — the mirror image of Values. Used by
// pkg/store's MarkInactive to hand callers a typed snapshot of the rows
// it just invalidated.
func ScanRows[T schema.Record](rows *sql.Rows) ([]T, error) {
	var zero T
	cols := Columns(zero)

	var out []T
	for rows.Next() {
		raw := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("ddl: scanning row: %w", err)
		}

		var t T
		if err := assignColumns(reflect.ValueOf(&t).Elem(), cols, raw); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// assignColumns walks v's (possibly embedded) struct fields in the same
// order and with the same flattening rules as Columns/Values, assigning
// raw[i] onto the field whose json tag matches cols[i].Name.
func assignColumns(v reflect.Value, cols []Column, raw []interface{}) error {
	idx := 0
	seen := map[string]bool{}

	var walk func(v reflect.Value) error
	walk = func(v reflect.Value) error {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fv := v.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				if err := walk(fv); err != nil {
					return err
				}
				continue
			}
			tag := f.Tag.Get("json")
			name := strings.Split(tag, ",")[0]
			if name == "" || name == "-" || seen[name] {
				continue
			}
			seen[name] = true
			if idx >= len(raw) {
				return fmt.Errorf("ddl: column %q missing from scanned row", name)
			}
			if err := assignField(fv, raw[idx]); err != nil {
				return fmt.Errorf("ddl: assigning column %q: %w", name, err)
			}
			idx++
		}
		return nil
	}
	return walk(v)
}

var sqlScannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()

// assignField converts one driver-decoded value back onto an addressable
// struct field, handling the same shapes columnValue produces: Valuer/
// Scanner types (scfields.JSONColumn) round-trip through Scan, plain
// slices/maps are JSON-decoded back from their text/blob form, pointers
// recurse into their element type (nil staying nil), and time.Time/
// string/numeric/bool fields are converted from whatever the driver
// handed back (modernc.org/sqlite commonly returns string/[]byte/int64/
// float64 rather than the exact Go type).
func assignField(fv reflect.Value, raw interface{}) error {
	ft := fv.Type()

	if raw == nil {
		fv.Set(reflect.Zero(ft))
		return nil
	}

	if fv.CanAddr() && fv.Addr().Type().Implements(sqlScannerType) {
		return fv.Addr().Interface().(sql.Scanner).Scan(raw)
	}

	if ft.Kind() == reflect.Ptr {
		elem := reflect.New(ft.Elem())
		if err := assignField(elem.Elem(), raw); err != nil {
			return err
		}
		fv.Set(elem)
		return nil
	}

	if ft == timeType {
		switch val := raw.(type) {
		case time.Time:
			fv.Set(reflect.ValueOf(val))
			return nil
		case string:
			parsed, err := parseTimeFlexible(val)
			if err != nil {
				return err
			}
			fv.Set(reflect.ValueOf(parsed))
			return nil
		case []byte:
			parsed, err := parseTimeFlexible(string(val))
			if err != nil {
				return err
			}
			fv.Set(reflect.ValueOf(parsed))
			return nil
		default:
			return fmt.Errorf("cannot assign %T into time.Time", raw)
		}
	}

	switch ft.Kind() {
	case reflect.Slice, reflect.Map:
		var b []byte
		switch val := raw.(type) {
		case []byte:
			b = val
		case string:
			b = []byte(val)
		default:
			return fmt.Errorf("cannot assign %T into %s", raw, ft)
		}
		dst := reflect.New(ft)
		if err := json.Unmarshal(b, dst.Interface()); err != nil {
			return err
		}
		fv.Set(dst.Elem())
		return nil
	case reflect.String:
		switch val := raw.(type) {
		case string:
			fv.SetString(val)
		case []byte:
			fv.SetString(string(val))
		default:
			return fmt.Errorf("cannot assign %T into %s", raw, ft)
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch val := raw.(type) {
		case int64:
			fv.SetInt(val)
		case float64:
			fv.SetInt(int64(val))
		default:
			return fmt.Errorf("cannot assign %T into %s", raw, ft)
		}
		return nil
	case reflect.Float32, reflect.Float64:
		switch val := raw.(type) {
		case float64:
			fv.SetFloat(val)
		case int64:
			fv.SetFloat(float64(val))
		default:
			return fmt.Errorf("cannot assign %T into %s", raw, ft)
		}
		return nil
	case reflect.Bool:
		switch val := raw.(type) {
		case bool:
			fv.SetBool(val)
		case int64:
			fv.SetBool(val != 0)
		default:
			return fmt.Errorf("cannot assign %T into %s", raw, ft)
		}
		return nil
	default:
		return fmt.Errorf("ddl: unsupported scan field kind %s", ft.Kind())
	}
}

// parseTimeFlexible accepts both RFC3339 and SQLite's default
// "YYYY-MM-DD HH:MM:SS[.sss]" datetime text representation, since
// modernc.org/sqlite round-trips a bound time.Time through the latter.
func parseTimeFlexible(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05.999999999", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
