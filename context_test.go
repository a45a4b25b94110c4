package canopy

import (
	"testing"
	"testing/fstest"
)

func TestTranslateDefaultLanguage(t *testing.T) {
	d := newTestDocument()
	ctx := d.Context()
	if got := ctx.Translate("canopy.cancel"); got != "Cancel" {
		t.Errorf("Translate = %q, want Cancel", got)
	}
	if got := ctx.Translate("no.such.message"); got != "no.such.message" {
		t.Errorf("missing message should fall back to its id, got %q", got)
	}
}

func TestSetLanguageThenAddSurface(t *testing.T) {
	d := newTestDocument()
	d.SetLanguage("pt")

	c := d.AddSurface("C")
	if got := c.Context().Language(); got != "pt" {
		t.Errorf("new surface language = %q, want pt", got)
	}
	btn := NewButton("cancel", "canopy.cancel")
	c.Attach(btn)
	if got := btn.DisplayText(); got != "Cancelar" {
		t.Errorf("DisplayText = %q, want Cancelar", got)
	}
}

func TestSetLanguageRefreshesCachedText(t *testing.T) {
	d := newTestDocument()
	s := d.AddSurface("s")
	btn := NewButton("close", "canopy.close")
	s.Attach(btn)

	if got := btn.DisplayText(); got != "Close" {
		t.Fatalf("DisplayText = %q, want Close", got)
	}
	d.SetLanguage("pt")
	if got := btn.DisplayText(); got != "Fechar" {
		t.Errorf("DisplayText after switch = %q, want Fechar", got)
	}
}

func TestSetLanguageUnknownFallsBack(t *testing.T) {
	d := newTestDocument()
	d.SetLanguage("fr")
	if d.Language() != "fr" {
		t.Errorf("Language = %q, want fr", d.Language())
	}
	if got := d.Context().Translate("canopy.ok"); got != "OK" {
		t.Errorf("Translate = %q, want the default-language text", got)
	}
}

func TestSetLanguageNotifiesCommittedSurfacesOnly(t *testing.T) {
	d := newTestDocument()
	committed := d.AddSurface("committed")
	label := NewLabel("l", "")
	committed.Attach(label)

	var got []string
	label.OnLanguageChanged = func(lang string) { got = append(got, "committed:"+lang) }

	var pendingLabel *Control
	committed.OnUpdate = func(*Surface, float64) {
		if pendingLabel != nil {
			return
		}
		p := d.AddSurface("pending")
		pendingLabel = NewLabel("pl", "")
		pendingLabel.OnLanguageChanged = func(lang string) { got = append(got, "pending:"+lang) }
		p.Attach(pendingLabel)
	}
	d.Update(0.1)
	if d.PendingChanges() != 1 {
		t.Fatalf("PendingChanges = %d, want 1", d.PendingChanges())
	}

	// The pending surface is neither notified nor committed by the switch.
	d.SetLanguage("pt")
	assertNames(t, got, []string{"committed:pt"})
	if d.SurfaceCount() != 1 || d.PendingChanges() != 1 {
		t.Errorf("SurfaceCount = %d, PendingChanges = %d, want 1 and 1", d.SurfaceCount(), d.PendingChanges())
	}
	if pendingLabel.Surface().Context().Language() != "pt" {
		t.Error("pending surface should see the new language through the shared context")
	}
}

func TestSwitchLanguageDefersMutations(t *testing.T) {
	d := newTestDocument()
	s := d.AddSurface("s")
	label := NewLabel("l", "")
	s.Attach(label)
	label.OnLanguageChanged = func(string) {
		d.DestroySurface(s)
		d.AddSurface("fresh")
	}

	d.SetLanguage("pt")
	assertNames(t, surfaceNames(d), []string{"s"})
	if d.PendingChanges() != 2 {
		t.Fatalf("PendingChanges = %d, want 2", d.PendingChanges())
	}

	d.ApplyPendingChanges()
	assertNames(t, surfaceNames(d), []string{"fresh"})
}

func TestLocalizationLoadFS(t *testing.T) {
	loc := NewLocalization("en")
	fsys := fstest.MapFS{
		"lang/game.en.yaml": {Data: []byte("menu.play: \"Play\"\n")},
		"lang/game.pt.json": {Data: []byte(`{"menu.play": "Jogar"}`)},
		"lang/readme.txt":   {Data: []byte("ignored")},
	}
	if err := loc.LoadFS(fsys, "lang"); err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if got := loc.Translate("menu.play"); got != "Play" {
		t.Errorf("en = %q, want Play", got)
	}
	loc.SetLanguage("pt")
	if got := loc.Translate("menu.play"); got != "Jogar" {
		t.Errorf("pt = %q, want Jogar", got)
	}
	// Built-in messages remain available.
	if got := loc.Translate("canopy.cancel"); got != "Cancelar" {
		t.Errorf("built-in pt = %q, want Cancelar", got)
	}
}

func TestLocalizationLoadErrors(t *testing.T) {
	loc := NewLocalization("en")
	if err := loc.LoadFS(fstest.MapFS{}, "missing"); err == nil {
		t.Error("expected error for missing directory")
	}
	if err := loc.LoadMessageFile([]byte("{not yaml"), "bad.en.yaml"); err == nil {
		t.Error("expected error for malformed message file")
	}
}

func TestLocalizationLanguages(t *testing.T) {
	loc := NewLocalization("en")
	langs := loc.Languages()
	has := map[string]bool{}
	for _, l := range langs {
		has[l] = true
	}
	if !has["en"] || !has["pt"] {
		t.Errorf("Languages = %v, want en and pt", langs)
	}
}

func TestNewLocalizationBadFallback(t *testing.T) {
	loc := NewLocalization("???")
	if loc.Language() != DefaultLanguage {
		t.Errorf("Language = %q, want %q", loc.Language(), DefaultLanguage)
	}
}
