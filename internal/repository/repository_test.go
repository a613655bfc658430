package repository_test

import (
	"context"
	"testing"

	"github.com/pdv-survey-api/internal/config"
	"github.com/pdv-survey-api/internal/mocks"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/repository"
)

func testSheetsConfig() *config.SheetsConfig {
	return &config.SheetsConfig{
		SpreadsheetID:       "test-spreadsheet",
		PermissionsSheet:    "Permisos",
		AltaPDVSheet:        "ALTA PDV",
		GPSLogSheet:         "LOGs GPS",
		HiddenSheets:        []string{"Permisos", "Actividad", "Hoja 2"},
		StatsExcludedSheets: []string{"Permisos", "Actividad", "Hoja 2", "Hoja 1", "LOGs GPS", "ALTA PDV"},
		AltaStartingID:      4279,
	}
}

func TestPermissionGet(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Permisos", [][]string{
		{"Email", "IDs Permitidos", "Hoja Asignada", "Nivel"},
		{"ana@example.com", "101, 102", "", "1"},
		{"Jefe@Example.com", "", "Zona Norte", "3"},
	})
	repos := repository.New(store, testSheetsConfig())

	rec, err := repos.Permissions.Get(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(rec.AllowedIDs) != 2 || rec.AllowedIDs[0] != "101" || rec.AllowedIDs[1] != "102" {
		t.Errorf("AllowedIDs = %v", rec.AllowedIDs)
	}
	if rec.Level != models.LevelUser {
		t.Errorf("Level = %d, want 1", rec.Level)
	}

	// email match is case-insensitive
	rec, err = repos.Permissions.Get(context.Background(), "jefe@example.com")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.Level != models.LevelAdmin || rec.AssignedSheet != "Zona Norte" {
		t.Errorf("record = %+v", rec)
	}
}

func TestPermissionGetMissingUserGetsDefaults(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Permisos", [][]string{
		{"Email", "IDs Permitidos", "Hoja Asignada", "Nivel"},
	})
	repos := repository.New(store, testSheetsConfig())

	rec, err := repos.Permissions.Get(context.Background(), "nadie@example.com")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.Level != models.LevelUser || len(rec.AllowedIDs) != 0 || rec.AssignedSheet != "" {
		t.Errorf("defaults = %+v", rec)
	}
}

func TestPermissionGetBootstrapsMissingTab(t *testing.T) {
	store := mocks.NewStore()
	repos := repository.New(store, testSheetsConfig())

	rec, err := repos.Permissions.Get(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("Get on empty spreadsheet failed: %v", err)
	}
	if rec.Level != models.LevelUser {
		t.Errorf("Level = %d, want 1", rec.Level)
	}
	if !store.HasTab("Permisos") {
		t.Error("permissions tab was not created")
	}
	header := store.Tab("Permisos")[0]
	if header[0] != "Email" || header[3] != "Nivel" {
		t.Errorf("bootstrap header = %v", header)
	}
}

func TestPermissionAllSkipsEmptyRows(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Permisos", [][]string{
		{"Email", "IDs Permitidos", "Hoja Asignada", "Nivel"},
		{"ana@example.com", "101", "", "1"},
		{"", "", "", ""},
		{"beto@example.com", "", "Zona Sur", "2"},
	})
	repos := repository.New(store, testSheetsConfig())

	records, err := repos.Permissions.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("All returned %d records, want 2", len(records))
	}
	if records[1].Level != models.LevelSupervisor {
		t.Errorf("second record level = %d", records[1].Level)
	}
}

func TestPermissionSaveNewUserAppends(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Permisos", [][]string{
		{"Email", "IDs Permitidos", "Hoja Asignada", "Nivel"},
	})
	repos := repository.New(store, testSheetsConfig())

	err := repos.Permissions.Save(context.Background(), "nuevo@example.com", []string{"7", "8"}, "", models.LevelUser)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	rows := store.Tab("Permisos")
	if len(rows) != 2 {
		t.Fatalf("tab has %d rows, want 2", len(rows))
	}
	if rows[1][0] != "nuevo@example.com" || rows[1][1] != "7, 8" || rows[1][3] != "1" {
		t.Errorf("appended row = %v", rows[1])
	}
}

func TestPermissionSavePreservesStoredLevel(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Permisos", [][]string{
		{"Email", "IDs Permitidos", "Hoja Asignada", "Nivel"},
		{"super@example.com", "1, 2", "", "2"},
	})
	repos := repository.New(store, testSheetsConfig())

	// the caller always passes level 1; the stored level must survive
	err := repos.Permissions.Save(context.Background(), "super@example.com", []string{"9"}, "Zona Sur", models.LevelUser)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	rows := store.Tab("Permisos")
	if len(rows) != 2 {
		t.Fatalf("upsert appended instead of updating: %d rows", len(rows))
	}
	row := rows[1]
	if row[1] != "9" || row[2] != "Zona Sur" {
		t.Errorf("updated row = %v", row)
	}
	if row[3] != "2" {
		t.Errorf("stored level was overwritten: %v", row)
	}
}

func TestCatalogHidesInfrastructureTabs(t *testing.T) {
	store := mocks.NewStore()
	for _, tab := range []string{"Hoja 1", "Zona Norte", "Permisos", "Actividad", "ALTA PDV", "Hoja 2"} {
		store.SetTab(tab, [][]string{{"ID"}})
	}
	repos := repository.New(store, testSheetsConfig())

	catalog, err := repos.Rows.Catalog(context.Background())
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}
	want := []string{"Hoja 1", "Zona Norte", "ALTA PDV"}
	if len(catalog) != len(want) {
		t.Fatalf("Catalog = %v, want %v", catalog, want)
	}
	for i := range want {
		if catalog[i] != want[i] {
			t.Errorf("Catalog[%d] = %q, want %q", i, catalog[i], want[i])
		}
	}
}

func TestWorksheetTabsExcludesLegacyAndInfrastructure(t *testing.T) {
	store := mocks.NewStore()
	for _, tab := range []string{"Hoja 1", "Zona Norte", "LOGs GPS", "ALTA PDV", "Zona Sur"} {
		store.SetTab(tab, [][]string{{"ID"}})
	}
	repos := repository.New(store, testSheetsConfig())

	tabs, err := repos.Rows.WorksheetTabs(context.Background())
	if err != nil {
		t.Fatalf("WorksheetTabs failed: %v", err)
	}
	if len(tabs) != 2 || tabs[0] != "Zona Norte" || tabs[1] != "Zona Sur" {
		t.Errorf("WorksheetTabs = %v", tabs)
	}
}

func TestDefaultTabFallsBackToFirstCatalogTab(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Permisos", [][]string{{"Email"}})
	store.SetTab("Zona Norte", [][]string{{"ID"}})
	repos := repository.New(store, testSheetsConfig())

	tab, err := repos.Rows.DefaultTab(context.Background())
	if err != nil {
		t.Fatalf("DefaultTab failed: %v", err)
	}
	if tab != "Zona Norte" {
		t.Errorf("DefaultTab = %q, want Zona Norte", tab)
	}

	cfg := testSheetsConfig()
	cfg.DefaultSheet = "Hoja 1"
	repos = repository.New(store, cfg)
	tab, err = repos.Rows.DefaultTab(context.Background())
	if err != nil || tab != "Hoja 1" {
		t.Errorf("configured DefaultTab = (%q, %v)", tab, err)
	}
}

func TestCombinedView(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Zona Norte", [][]string{
		{"ID", "Nombre"},
		{"205", "Kiosco B"},
	})
	store.SetTab("Zona Sur", [][]string{
		{"ID", "Nombre"},
		{"101", "Kiosco A"},
		{"310", "Kiosco C"},
	})
	repos := repository.New(store, testSheetsConfig())

	all, err := repos.Rows.Combined(context.Background(), []string{"Zona Norte", "Zona Sur"})
	if err != nil {
		t.Fatalf("Combined failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Combined returned %d rows, want header + 3", len(all))
	}

	header := all[0]
	if header[len(header)-1] != models.SheetNameColumn {
		t.Errorf("header = %v, want trailing %s", header, models.SheetNameColumn)
	}

	// rows sorted by numeric ID, each carrying its source tab
	wantIDs := []string{"101", "205", "310"}
	wantTabs := []string{"Zona Sur", "Zona Norte", "Zona Sur"}
	for i, row := range all[1:] {
		if row[0] != wantIDs[i] {
			t.Errorf("row %d ID = %q, want %q", i, row[0], wantIDs[i])
		}
		if row[len(row)-1] != wantTabs[i] {
			t.Errorf("row %d source tab = %q, want %q", i, row[len(row)-1], wantTabs[i])
		}
	}
}

func TestCombinedSkipsUnreadableTabs(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Zona Norte", [][]string{
		{"ID"},
		{"101"},
	})
	repos := repository.New(store, testSheetsConfig())

	// "Fantasma" does not exist; the view keeps what it can read
	all, err := repos.Rows.Combined(context.Background(), []string{"Fantasma", "Zona Norte"})
	if err != nil {
		t.Fatalf("Combined failed: %v", err)
	}
	if len(all) != 2 || all[1][0] != "101" {
		t.Errorf("Combined = %v", all)
	}
}

func TestIDsSkipsHeaderAndBlanks(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Zona Norte", [][]string{
		{"ID"},
		{" 101 "},
		{""},
		{"102"},
	})
	repos := repository.New(store, testSheetsConfig())

	ids, err := repos.Rows.IDs(context.Background(), "Zona Norte")
	if err != nil {
		t.Fatalf("IDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "101" || ids[1] != "102" {
		t.Errorf("IDs = %v", ids)
	}
}

func TestUpdateRowWritesInPlace(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Zona Norte", [][]string{
		{"ID", "Nombre", "Estado"},
		{"101", "Kiosco A", ""},
	})
	repos := repository.New(store, testSheetsConfig())

	err := repos.Rows.UpdateRow(context.Background(), "Zona Norte", 2, []string{"101", "Kiosco A", "Abierto"})
	if err != nil {
		t.Fatalf("UpdateRow failed: %v", err)
	}
	row := store.Tab("Zona Norte")[1]
	if row[2] != "Abierto" {
		t.Errorf("row after update = %v", row)
	}
}

func TestEnsureAltaTabCreatesWithHeader(t *testing.T) {
	store := mocks.NewStore()
	repos := repository.New(store, testSheetsConfig())

	if err := repos.Rows.EnsureAltaTab(context.Background()); err != nil {
		t.Fatalf("EnsureAltaTab failed: %v", err)
	}
	if !store.HasTab("ALTA PDV") {
		t.Fatal("registration tab was not created")
	}
	header := store.Tab("ALTA PDV")[0]
	if header[0] != models.AltaPDVHeader[0] {
		t.Errorf("header = %v", header)
	}

	// second call is a no-op
	if err := repos.Rows.EnsureAltaTab(context.Background()); err != nil {
		t.Fatalf("EnsureAltaTab second call failed: %v", err)
	}
}

func TestGPSAppendBootstrapsLogTab(t *testing.T) {
	store := mocks.NewStore()
	repos := repository.New(store, testSheetsConfig())

	row := []string{"30/08/2026", "10:15:00", "ana@example.com", "-34.6", "-58.4", "Mobile", "Inicio sesión"}
	if err := repos.GPS.Append(context.Background(), row); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	rows := store.Tab("LOGs GPS")
	if len(rows) != 2 {
		t.Fatalf("log tab has %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "Fecha" || rows[1][2] != "ana@example.com" {
		t.Errorf("log tab = %v", rows)
	}
}

func TestGPSAllParsesAndFiltersNoise(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("LOGs GPS", [][]string{
		{"Fecha", "Hora", "Email", "Latitud", "Longitud", "Dispositivo", "Evento"},
		{"30/08/2026", "10:15:00", "ana@example.com", "-34.6", "-58.4", "Mobile", "Inicio sesión"},
		{"30/08/2026", "10:16:00", "ana@example.com", "0", "0", "Mobile", "Foco en ventana"},
	})
	repos := repository.New(store, testSheetsConfig())

	logs, err := repos.GPS.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("All returned %d logs, want 1 (zero coordinates dropped)", len(logs))
	}
	if logs[0].Latitud != -34.6 || logs[0].Evento != "Inicio sesión" {
		t.Errorf("parsed log = %+v", logs[0])
	}
}

func TestGPSAllMissingTabIsEmpty(t *testing.T) {
	store := mocks.NewStore()
	repos := repository.New(store, testSheetsConfig())

	logs, err := repos.GPS.All(context.Background())
	if err != nil {
		t.Fatalf("All on missing tab failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("All = %v, want empty", logs)
	}
}
