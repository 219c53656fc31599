package config

import "testing"

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if cfg.Gaps != 16 {
		t.Fatalf("expected default gaps 16, got %v", cfg.Gaps)
	}
	if len(cfg.PresetColumnWidths) != 3 {
		t.Fatalf("expected 3 default preset widths, got %d", len(cfg.PresetColumnWidths))
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath("/nonexistent/scrollwm/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gaps != Default().Gaps {
		t.Fatalf("expected default gaps, got %v", cfg.Gaps)
	}
}

func TestParse_OverridesGapsAndCenterPolicy(t *testing.T) {
	cfg, err := Parse([]byte("gaps: 4\ncenter_focused_column: always\n"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gaps != 4 {
		t.Fatalf("expected gaps 4, got %v", cfg.Gaps)
	}
	if cfg.CenterFocusedColumn != CenterAlways {
		t.Fatalf("expected center_focused_column=always, got %v", cfg.CenterFocusedColumn)
	}
}

func TestClamp_ProportionOutOfRange(t *testing.T) {
	cfg, err := Parse([]byte("default_column_width:\n  proportion: 5\n"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultColumnWidth.Value != 1 {
		t.Fatalf("expected proportion clamped to 1, got %v", cfg.DefaultColumnWidth.Value)
	}
}

func TestClamp_SpringDampingRatioOutOfRange(t *testing.T) {
	cfg, err := Parse([]byte("animations:\n  view_offset:\n    kind: spring\n    damping_ratio: 50\n"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Animations.ViewOffset.DampingRatio != 10 {
		t.Fatalf("expected damping ratio clamped to 10, got %v", cfg.Animations.ViewOffset.DampingRatio)
	}
}

func TestClampStruts_DropsAxisThatWouldLeaveNonPositiveArea(t *testing.T) {
	s := ClampStruts(Struts{Left: 700, Right: 700}, 1280, 720)
	if s.Left != 0 || s.Right != 0 {
		t.Fatalf("expected oversized struts to be dropped, got %+v", s)
	}
}

func TestClampScale_Range(t *testing.T) {
	if got := ClampScale(0.01); got != 0.1 {
		t.Fatalf("expected clamp to 0.1, got %v", got)
	}
	if got := ClampScale(100); got != 10 {
		t.Fatalf("expected clamp to 10, got %v", got)
	}
}
