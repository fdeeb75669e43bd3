package entities

import "testing"

func TestStageStatusRoundTrip(t *testing.T) {
	statuses := Statuses()
	if len(statuses) != 10 {
		t.Fatalf("expected 10 canonical statuses, got %d", len(statuses))
	}

	for _, status := range statuses {
		stage, ok := StageOf(status)
		if !ok {
			t.Fatalf("status %s has no stage", status)
		}
		back, ok := StatusOf(stage)
		if !ok || back != status {
			t.Fatalf("StatusOf(StageOf(%s)) = %s", status, back)
		}
		again, _ := StageOf(back)
		if again != stage {
			t.Fatalf("stage round trip unstable for %s: %s != %s", status, again, stage)
		}
	}
}

func TestStagesAreDistinctAndOrdered(t *testing.T) {
	stages := Stages()
	seen := map[StageID]bool{}
	for i, stage := range stages {
		if seen[stage] {
			t.Fatalf("duplicated stage %s", stage)
		}
		seen[stage] = true

		status, _ := StatusOf(stage)
		if Statuses()[i] != status {
			t.Fatalf("stage order differs from status order at %d", i)
		}
	}
	if stages[len(stages)-1] != StageEntregue {
		t.Fatalf("terminal stage must be last, got %s", stages[len(stages)-1])
	}
}

func TestStageForFetched(t *testing.T) {
	cases := map[string]StageID{
		"em_execucao":  StageExecucao,
		" ENTREGUE ":   StageEntregue,
		"concluido":    StageEntregue,
		"parcial":      StageAprovado,
		"desconhecido": StageOrcamento,
		"":             StageOrcamento,
	}
	for raw, want := range cases {
		if got := StageForFetched(raw); got != want {
			t.Fatalf("StageForFetched(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestStageTitle(t *testing.T) {
	if got := StageTitle(StageEntregue); got != "Entregue" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := StageTitle("nope"); got != "nope" {
		t.Fatalf("unknown stage should echo id, got %q", got)
	}
	if !OrderStatusEntregue.IsTerminal() || OrderStatusPronto.IsTerminal() {
		t.Fatalf("only entregue is terminal")
	}
}
