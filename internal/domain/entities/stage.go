package entities

import "strings"

// StageID identifies a kanban column. Each stage corresponds to exactly one
// OrderStatus and the two tables below are inverses of each other.
type StageID string

const (
	StageAgendamento         StageID = "agendamento"
	StageDiagnostico         StageID = "diagnostico"
	StageOrcamento           StageID = "orcamento"
	StageAguardandoAprovacao StageID = "aguardando-aprovacao"
	StageAprovado            StageID = "aprovado"
	StageAguardandoPeca      StageID = "aguardando-peca"
	StageExecucao            StageID = "execucao"
	StageTeste               StageID = "teste"
	StagePronto              StageID = "pronto"
	StageEntregue            StageID = "entregue"
)

// DefaultStage receives orders whose status is not recognised.
const DefaultStage = StageOrcamento

type stageDef struct {
	stage  StageID
	status OrderStatus
	title  string
}

// board order
var stageDefs = []stageDef{
	{StageAgendamento, OrderStatusAgendamentoConfirmado, "Agendamento"},
	{StageDiagnostico, OrderStatusDiagnostico, "Diagnóstico"},
	{StageOrcamento, OrderStatusOrcamento, "Orçamento"},
	{StageAguardandoAprovacao, OrderStatusAguardandoAprovacao, "Aguardando Aprovação"},
	{StageAprovado, OrderStatusAprovado, "Aprovado"},
	{StageAguardandoPeca, OrderStatusAguardandoPeca, "Aguardando Peça"},
	{StageExecucao, OrderStatusEmExecucao, "Em Execução"},
	{StageTeste, OrderStatusEmTeste, "Em Teste"},
	{StagePronto, OrderStatusPronto, "Pronto"},
	{StageEntregue, OrderStatusEntregue, "Entregue"},
}

var (
	statusToStage = map[OrderStatus]StageID{}
	stageToStatus = map[StageID]OrderStatus{}
	stageTitles   = map[StageID]string{}
)

// Statuses still written by older call sites.
var legacyStatuses = map[string]OrderStatus{
	"concluido": OrderStatusEntregue,
	"parcial":   OrderStatusAprovado,
}

func init() {
	for _, d := range stageDefs {
		statusToStage[d.status] = d.stage
		stageToStatus[d.stage] = d.status
		stageTitles[d.stage] = d.title
	}
}

// Stages returns the stage ids in board order.
func Stages() []StageID {
	out := make([]StageID, len(stageDefs))
	for i, d := range stageDefs {
		out[i] = d.stage
	}
	return out
}

// Statuses returns the canonical statuses in board order.
func Statuses() []OrderStatus {
	out := make([]OrderStatus, len(stageDefs))
	for i, d := range stageDefs {
		out[i] = d.status
	}
	return out
}

func StageOf(status OrderStatus) (StageID, bool) {
	s, ok := statusToStage[status]
	return s, ok
}

func StatusOf(stage StageID) (OrderStatus, bool) {
	s, ok := stageToStatus[stage]
	return s, ok
}

func IsKnownStage(stage StageID) bool {
	_, ok := stageToStatus[stage]
	return ok
}

func StageTitle(stage StageID) string {
	if t, ok := stageTitles[stage]; ok {
		return t
	}
	return string(stage)
}

// NormalizeStatus maps a raw persisted status onto the canonical enum.
// The empty string is returned for values that match nothing.
func NormalizeStatus(raw string) OrderStatus {
	v := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := statusToStage[v]; ok {
		return v
	}
	if legacy, ok := legacyStatuses[string(v)]; ok {
		return legacy
	}
	return ""
}

// StageForFetched never drops a row: unknown statuses go to DefaultStage.
func StageForFetched(raw string) StageID {
	if stage, ok := statusToStage[NormalizeStatus(raw)]; ok {
		return stage
	}
	return DefaultStage
}
