package repository

import (
	"context"
	"errors"
	"time"

	"fluxo_notas/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultHistoricoTableName = "notas_historico"

var errCounterCorrupted = errors.New("id counter attribute missing or not numeric")

type historicoItem struct {
	NotaID     string `dynamodbav:"nota_id"`
	ID         string `dynamodbav:"id"`
	NovoStatus string `dynamodbav:"novo_status"`
	Observacao string `dynamodbav:"observacao"`
	Mensagem   string `dynamodbav:"mensagem"`
	Autor      string `dynamodbav:"autor"`
	CriadoEm   string `dynamodbav:"criado_em"`
}

// AppendHistoryLog inserts one audit trail entry.
//
// Table requirements:
//   - notas_historico: PK nota_id (string), SK id (string).
//
// The trail is append-only; no update or delete operation is exposed.
func (r *NotaDynamoRepository) AppendHistoryLog(ctx context.Context, notaID string, e entities.HistoricoEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CriadoEm.IsZero() {
		e.CriadoEm = time.Now().UTC()
	}
	it := historicoItem{
		NotaID:     notaID,
		ID:         e.ID,
		NovoStatus: e.NovoStatus,
		Observacao: e.Observacao,
		Mensagem:   e.Mensagem,
		Autor:      e.Autor,
		CriadoEm:   e.CriadoEm.UTC().Format(timeLayout),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.historicoTable),
		Item:      av,
	})
	return err
}
