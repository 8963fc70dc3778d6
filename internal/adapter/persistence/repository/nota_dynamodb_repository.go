package repository

import (
	"context"
	"log"
	"strconv"
	"time"

	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/workflow"
	"fluxo_notas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotasTableName      = "notas"
	defaultContadoresTableName = "contadores"

	contadorNotas = "notas"
)

// timeLayout is fixed-width UTC so stored timestamps compare as strings in
// the same order as the instants they encode; the changed-since filter
// relies on that.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type notaItem struct {
	ID               string   `dynamodbav:"id"`
	Titulo           string   `dynamodbav:"titulo"`
	Filial           string   `dynamodbav:"filial"`
	NumeroNotaFiscal string   `dynamodbav:"numero_nota_fiscal"`
	Pedidos          []string `dynamodbav:"pedidos,omitempty"`
	FormaPagamento   string   `dynamodbav:"forma_pagamento"`
	DataPagamento    string   `dynamodbav:"data_pagamento"`
	Valor            string   `dynamodbav:"valor"`
	Banco            string   `dynamodbav:"banco"`
	Agencia          string   `dynamodbav:"agencia"`
	Conta            string   `dynamodbav:"conta"`
	TipoConta        string   `dynamodbav:"tipo_conta"`
	ChavePix         string   `dynamodbav:"chave_pix"`
	CriadorID        string   `dynamodbav:"criador_id"`
	CriadorNome      string   `dynamodbav:"criador_nome"`
	Status           string   `dynamodbav:"status"`

	StatusManual               string `dynamodbav:"status_manual"`
	CompartilhadoCom           string `dynamodbav:"compartilhado_com"`
	ComentarioCompartilhamento string `dynamodbav:"comentario_compartilhamento"`

	TipoErro            string `dynamodbav:"tipo_erro"`
	ObservacaoErro      string `dynamodbav:"observacao_erro"`
	ObservacaoAprovador string `dynamodbav:"observacao_aprovador"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// NotaDynamoRepository is the DynamoDB-backed system of record for notes.
//
// Table requirements:
//   - notas: PK id (string). The collection is bounded to low thousands of
//     items, so listing scans with pagination instead of maintaining
//     secondary indexes.
//   - contadores: PK nome (string), attribute valor (number). Holds the
//     atomic id counter so assigned ids are monotonically increasing.

type NotaDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	contadoresTable string
	historicoTable  string
}

var _ interfaces.INotaRecordStore = (*NotaDynamoRepository)(nil)

func NewNotaDynamoRepository(ddb *dynamodb.Client) *NotaDynamoRepository {
	return &NotaDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("NOTAS_TABLE", defaultNotasTableName),
		contadoresTable: getenvDefault("CONTADORES_TABLE", defaultContadoresTableName),
		historicoTable:  getenvDefault("NOTAS_HISTORICO_TABLE", defaultHistoricoTableName),
	}
}

func (r *NotaDynamoRepository) ListAll(ctx context.Context) ([]entities.Nota, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *NotaDynamoRepository) ListChangedSince(ctx context.Context, watermark time.Time) ([]entities.Nota, error) {
	filter := "#updated_at > :since"
	return r.scan(ctx, &filter,
		map[string]string{"#updated_at": "updated_at"},
		map[string]types.AttributeValue{
			":since": &types.AttributeValueMemberS{Value: watermark.UTC().Format(timeLayout)},
		})
}

func (r *NotaDynamoRepository) scan(
	ctx context.Context,
	filter *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Nota, error) {
	var notas []entities.Nota
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it notaItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				// One malformed record must not abort the batch.
				log.Printf("[nota][repository] skipping malformed item err=%v", err)
				continue
			}
			notas = append(notas, fromNotaItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return notas, nil
}

// Create assigns the next id from the atomic counter and persists the note.
// A submission arrives as Processando and lands as Pendente once the id is
// assigned: Processando only ever exists while the write is in flight.
func (r *NotaDynamoRepository) Create(ctx context.Context, n entities.Nota) (entities.Nota, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return entities.Nota{}, err
	}
	n.ID = id
	if n.Status == entities.StatusProcessando || n.Status == "" {
		n.Status = entities.StatusPendente
	}
	now := time.Now().UTC()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toNotaItem(n))
	if err != nil {
		return entities.Nota{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Nota{}, err
	}
	return n, nil
}

func (r *NotaDynamoRepository) nextID(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.contadoresTable),
		Key: map[string]types.AttributeValue{
			"nome": &types.AttributeValueMemberS{Value: contadorNotas},
		},
		UpdateExpression: aws.String("ADD #valor :um"),
		ExpressionAttributeNames: map[string]string{
			"#valor": "valor",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":um": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}
	v, ok := out.Attributes["valor"].(*types.AttributeValueMemberN)
	if !ok {
		return "", errCounterCorrupted
	}
	return v.Value, nil
}

// Update applies the mutation's non-nil fields only (partial semantics) and
// returns the resulting note.
func (r *NotaDynamoRepository) Update(ctx context.Context, id string, m workflow.Mutation) (entities.Nota, error) {
	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(timeLayout)},
	}
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
	}

	sets := []struct {
		attr string
		val  *string
	}{
		{"status_manual", m.StatusManual},
		{"compartilhado_com", m.CompartilhadoCom},
		{"comentario_compartilhamento", m.ComentarioCompartilhamento},
		{"tipo_erro", m.TipoErro},
		{"observacao_erro", m.ObservacaoErro},
		{"observacao_aprovador", m.ObservacaoAprovador},
	}
	if m.Status != nil {
		s := string(*m.Status)
		sets = append(sets, struct {
			attr string
			val  *string
		}{"status", &s})
	}
	for _, f := range sets {
		if f.val == nil {
			continue
		}
		expr += ", #" + f.attr + " = :" + f.attr
		names["#"+f.attr] = f.attr
		values[":"+f.attr] = &types.AttributeValueMemberS{Value: *f.val}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Nota{}, err
	}
	var it notaItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Nota{}, err
	}
	return fromNotaItem(it), nil
}

func toNotaItem(n entities.Nota) notaItem {
	return notaItem{
		ID:               n.ID,
		Titulo:           n.Titulo,
		Filial:           n.Filial,
		NumeroNotaFiscal: n.NumeroNotaFiscal,
		Pedidos:          n.Pedidos,
		FormaPagamento:   n.FormaPagamento,
		DataPagamento:    n.DataPagamento,
		Valor:            floatToString(n.Valor),
		Banco:            n.Banco,
		Agencia:          n.Agencia,
		Conta:            n.Conta,
		TipoConta:        n.TipoConta,
		ChavePix:         n.ChavePix,
		CriadorID:        n.Criador.ID,
		CriadorNome:      n.Criador.Nome,
		Status:           string(n.Status),

		StatusManual:               n.StatusManual,
		CompartilhadoCom:           n.CompartilhadoCom,
		ComentarioCompartilhamento: n.ComentarioCompartilhamento,

		TipoErro:            n.TipoErro,
		ObservacaoErro:      n.ObservacaoErro,
		ObservacaoAprovador: n.ObservacaoAprovador,

		CreatedAt: n.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: n.UpdatedAt.UTC().Format(timeLayout),
	}
}

// fromNotaItem maps defensively: missing or unparsable fields default to safe
// empty values instead of failing the record.
func fromNotaItem(it notaItem) entities.Nota {
	createdAt, _ := time.Parse(timeLayout, it.CreatedAt)
	updatedAt, _ := time.Parse(timeLayout, it.UpdatedAt)
	valor, _ := strconv.ParseFloat(it.Valor, 64)

	status := entities.NotaStatus(it.Status)
	if !status.Valid() {
		status = entities.StatusPendente
	}

	return entities.Nota{
		ID:               it.ID,
		Titulo:           it.Titulo,
		Filial:           it.Filial,
		NumeroNotaFiscal: it.NumeroNotaFiscal,
		Pedidos:          it.Pedidos,
		FormaPagamento:   it.FormaPagamento,
		DataPagamento:    it.DataPagamento,
		Valor:            valor,
		Banco:            it.Banco,
		Agencia:          it.Agencia,
		Conta:            it.Conta,
		TipoConta:        it.TipoConta,
		ChavePix:         it.ChavePix,
		Criador:          entities.Criador{ID: it.CriadorID, Nome: it.CriadorNome},
		Status:           status,

		StatusManual:               it.StatusManual,
		CompartilhadoCom:           it.CompartilhadoCom,
		ComentarioCompartilhamento: it.ComentarioCompartilhamento,

		TipoErro:            it.TipoErro,
		ObservacaoErro:      it.ObservacaoErro,
		ObservacaoAprovador: it.ObservacaoAprovador,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
