package ddl

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/sparecores/sc-crawler/pkg/schema"
)

// openScanTestEngine opens an in-memory sqlite database seeded with the
// region table's own CreateTable output, for round-tripping ScanRows
// against real driver-decoded values rather than hand-built fakes.
func openScanTestEngine(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(CreateTable("sqlite", schema.Region{})); err != nil {
		t.Fatalf("creating region table: %v", err)
	}
	return db
}

func TestColumns_FlattensEmbeddedMeta(t *testing.T) {
	cols := Columns(schema.Region{})
	names := map[string]bool{}
	for _, c := range cols {
		names[c.Name] = true
	}
	for _, want := range []string{"vendor_id", "region_id", "name", "status", "observed_at", "lat", "lon"} {
		if !names[want] {
			t.Errorf("Columns(Region{}) missing %q, got %v", want, names)
		}
	}
}

func TestColumns_MarksPrimaryKeys(t *testing.T) {
	cols := Columns(schema.Zone{})
	pkSet := map[string]bool{}
	for _, c := range cols {
		if c.IsPK {
			pkSet[c.Name] = true
		}
	}
	for _, want := range []string{"vendor_id", "region_id", "zone_id"} {
		if !pkSet[want] {
			t.Errorf("expected %q to be a primary key column, got %v", want, pkSet)
		}
	}
	if pkSet["name"] {
		t.Error("name should not be a primary key column")
	}
}

func TestColumns_ScdPromotesObservedAtIntoPK(t *testing.T) {
	cols := Columns(schema.RegionScd{})
	for _, c := range cols {
		if c.Name == "observed_at" && !c.IsPK {
			t.Error("expected observed_at to be a primary key column on the SCD companion")
		}
	}
}

func TestCreateTable_AllDialectsProduceValidShape(t *testing.T) {
	for _, dialect := range Dialects {
		stmt := CreateTable(dialect, schema.Server{})
		if !strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS") {
			t.Errorf("[%s] missing CREATE TABLE clause: %s", dialect, stmt)
		}
		if !strings.Contains(stmt, "pk_server") {
			t.Errorf("[%s] missing named PK constraint: %s", dialect, stmt)
		}
	}
}

func TestCreateTable_NullableOnlyForPointerFields(t *testing.T) {
	stmt := CreateTable("sqlite", schema.Storage{})
	lines := strings.Split(stmt, "\n")
	var descriptionLine, nameLine string
	for _, l := range lines {
		if strings.Contains(l, "description") {
			descriptionLine = l
		}
		if strings.Contains(l, " name ") {
			nameLine = l
		}
	}
	if !strings.Contains(descriptionLine, "NULL") || strings.Contains(descriptionLine, "NOT NULL") {
		t.Errorf("expected description (a *string) to be nullable, got %q", descriptionLine)
	}
	if !strings.Contains(nameLine, "NOT NULL") {
		t.Errorf("expected name (a string) to be NOT NULL, got %q", nameLine)
	}
}

func TestValues_MatchesColumnsLength(t *testing.T) {
	r := schema.Region{VendorID: "aws", RegionID: "us-east-1", Name: "US East (N. Virginia)"}
	cols := Columns(r)
	vals := Values(r)
	if len(cols) != len(vals) {
		t.Fatalf("Columns() returned %d, Values() returned %d", len(cols), len(vals))
	}
}

func TestValues_JSONColumnSerializesToString(t *testing.T) {
	s := schema.Server{VendorID: "aws", ServerID: "m5.large"}
	cols := Columns(s)
	vals := Values(s)
	for i, c := range cols {
		if c.Name == "cpus" {
			str, ok := vals[i].(string)
			if !ok {
				t.Fatalf("expected cpus column value to be a JSON string, got %T", vals[i])
			}
			if str != "null" && str != "[]" {
				t.Errorf("expected empty cpus JSON, got %q", str)
			}
		}
	}
}

func TestCreateTable_EmitsNamedForeignKeys(t *testing.T) {
	stmt := CreateTable("sqlite", schema.Zone{})
	want := ForeignKeyName("zone", "vendor_id_region_id", "region")
	if !strings.Contains(stmt, want) {
		t.Errorf("expected a FOREIGN KEY constraint named %q, got:\n%s", want, stmt)
	}
	if !strings.Contains(stmt, "FOREIGN KEY (vendor_id, region_id) REFERENCES region (vendor_id, region_id)") {
		t.Errorf("expected a FOREIGN KEY clause referencing region, got:\n%s", stmt)
	}
}

func TestCreateTable_ScdTableHasNoForeignKeys(t *testing.T) {
	stmt := CreateTable("sqlite", schema.ZoneScd{})
	if strings.Contains(stmt, "FOREIGN KEY") {
		t.Errorf("SCD companion tables should carry no FK constraints (they outlive their referents): %s", stmt)
	}
}

func TestScanRows_RoundTripsThroughValues(t *testing.T) {
	db := openScanTestEngine(t)

	region := schema.Region{
		VendorID: "aws", RegionID: "us-east-1", Name: "N. Virginia", CountryID: "US",
		Aliases: []string{"use1", "iad"},
	}

	cols := Columns(region)
	names := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		placeholders[i] = "?"
	}
	colList := strings.Join(names, ", ")

	insert := fmt.Sprintf("INSERT INTO region (%s) VALUES (%s)", colList, strings.Join(placeholders, ", "))
	if _, err := db.Exec(insert, Values(region)...); err != nil {
		t.Fatalf("seeding region: %v", err)
	}

	// Select in Columns() order: ScanRows matches positionally, the same
	// way an UPDATE ... RETURNING built from the same column list would.
	rows, err := db.Query(fmt.Sprintf("SELECT %s FROM region", colList))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	got, err := ScanRows[schema.Region](rows)
	if err != nil {
		t.Fatalf("ScanRows() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 scanned row, got %d", len(got))
	}
	if got[0].VendorID != "aws" || got[0].RegionID != "us-east-1" || got[0].Name != "N. Virginia" {
		t.Errorf("unexpected scanned region: %+v", got[0])
	}
	if len(got[0].Aliases) != 2 || got[0].Aliases[0] != "use1" {
		t.Errorf("expected aliases to round-trip through JSON, got %v", got[0].Aliases)
	}
}
