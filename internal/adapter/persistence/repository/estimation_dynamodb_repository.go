package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimationsTableName = "estimations"
	estimationsCodeFicheIndex   = "code_fiche-index"
)

type costLineItem struct {
	ID        string `dynamodbav:"id,omitempty"`
	CatalogID int    `dynamodbav:"catalog_id,omitempty"`
	Name      string `dynamodbav:"name"`
	Kind      string `dynamodbav:"kind,omitempty"`
	Amount    string `dynamodbav:"amount"`
	NoValue   bool   `dynamodbav:"no_value,omitempty"`
}

type estimationItem struct {
	ID                    string            `dynamodbav:"id"`
	CodeFiche             string            `dynamodbav:"code_fiche"`
	Version               int               `dynamodbav:"version"`
	Title                 string            `dynamodbav:"title"`
	ClientName            string            `dynamodbav:"client_name"`
	ConstructionTypeID    string            `dynamodbav:"construction_type_id,omitempty"`
	SurfaceType           string            `dynamodbav:"surface_type,omitempty"`
	ReferenceSurface      string            `dynamodbav:"reference_surface"`
	TargetSurface         string            `dynamodbav:"target_surface"`
	ExchangeRate          string            `dynamodbav:"exchange_rate,omitempty"`
	StandardLines         []costLineItem    `dynamodbav:"standard_lines"`
	CustomLines           []costLineItem    `dynamodbav:"custom_lines"`
	InitialPercentages    map[string]string `dynamodbav:"initial_percentages"`
	ReferenceProjectNames []string          `dynamodbav:"reference_project_names,omitempty"`
	CreatedBy             string            `dynamodbav:"created_by"`
	UpdatedBy             string            `dynamodbav:"updated_by"`
	CreatedAt             string            `dynamodbav:"created_at"`
	UpdatedAt             string            `dynamodbav:"updated_at"`
}

// EstimationDynamoRepository persists EstimationSheet versions in DynamoDB.
//
// Table requirements:
//   - PK: id (string), "<code_fiche>-v<version>"
//   - GSI code_fiche-index: code_fiche (string) HASH, version (number) RANGE
//
// Versions are immutable: Save only creates items and reports an existing id
// by returning a zero sheet.
type EstimationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimationRepository = (*EstimationDynamoRepository)(nil)

func NewEstimationDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimationDynamoRepository {
	return &EstimationDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrDefault(tableName, defaultEstimationsTableName),
	}
}

func (r *EstimationDynamoRepository) Save(ctx context.Context, sheet entities.EstimationSheet) (entities.EstimationSheet, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(sheet))
	if err != nil {
		return entities.EstimationSheet{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimationSheet{}, nil
		}
		return entities.EstimationSheet{}, err
	}
	return sheet, nil
}

func (r *EstimationDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimationSheet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimationSheet{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimationSheet{}, nil
	}

	var it estimationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimationSheet{}, err
	}
	return fromEstimationItem(it)
}

func (r *EstimationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ListByCodeFiche returns the versions of a document, oldest first.
func (r *EstimationDynamoRepository) ListByCodeFiche(ctx context.Context, codeFiche string) ([]entities.EstimationSheet, error) {
	var (
		sheets   []entities.EstimationSheet
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(estimationsCodeFicheIndex),
			KeyConditionExpression: aws.String("code_fiche = :code_fiche"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":code_fiche": &types.AttributeValueMemberS{Value: codeFiche},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it estimationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			sheet, err := fromEstimationItem(it)
			if err != nil {
				return nil, err
			}
			sheets = append(sheets, sheet)
		}

		if len(out.LastEvaluatedKey) == 0 {
			return sheets, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toEstimationItem(s entities.EstimationSheet) estimationItem {
	it := estimationItem{
		ID:                    s.ID,
		CodeFiche:             s.CodeFiche,
		Version:               s.Version,
		Title:                 s.Title,
		ClientName:            s.ClientName,
		ConstructionTypeID:    s.ConstructionTypeID,
		SurfaceType:           s.SurfaceType,
		ReferenceSurface:      floatToString(s.ReferenceSurface),
		TargetSurface:         floatToString(s.TargetSurface),
		StandardLines:         toCostLineItems(s.StandardLines),
		CustomLines:           toCostLineItems(s.CustomLines),
		InitialPercentages:    make(map[string]string, len(s.InitialPercentages)),
		ReferenceProjectNames: s.ReferenceProjectNames,
		CreatedBy:             s.CreatedBy,
		UpdatedBy:             s.UpdatedBy,
		CreatedAt:             formatTime(s.CreatedAt),
		UpdatedAt:             formatTime(s.UpdatedAt),
	}
	if s.ExchangeRate != nil {
		it.ExchangeRate = floatToString(*s.ExchangeRate)
	}
	for id, p := range s.InitialPercentages {
		it.InitialPercentages[id] = floatToString(p)
	}
	return it
}

// fromEstimationItem fails when a stored decimal is unreadable rather than
// loading it as 0.
func fromEstimationItem(it estimationItem) (entities.EstimationSheet, error) {
	var fr floatReader
	s := entities.EstimationSheet{
		ID:                    it.ID,
		CodeFiche:             it.CodeFiche,
		Version:               it.Version,
		Title:                 it.Title,
		ClientName:            it.ClientName,
		ConstructionTypeID:    it.ConstructionTypeID,
		SurfaceType:           it.SurfaceType,
		ReferenceSurface:      fr.parse("reference_surface", it.ReferenceSurface),
		TargetSurface:         fr.parse("target_surface", it.TargetSurface),
		StandardLines:         fromCostLineItems(&fr, it.StandardLines, entities.CostLineStandard),
		CustomLines:           fromCostLineItems(&fr, it.CustomLines, entities.CostLineCustom),
		ReferenceProjectNames: it.ReferenceProjectNames,
		CreatedBy:             it.CreatedBy,
		UpdatedBy:             it.UpdatedBy,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
	if it.ExchangeRate != "" {
		s.ExchangeRate = entities.FloatPtr(fr.parse("exchange_rate", it.ExchangeRate))
	}
	if len(it.InitialPercentages) > 0 {
		s.InitialPercentages = make(map[string]float64, len(it.InitialPercentages))
		for id, p := range it.InitialPercentages {
			s.InitialPercentages[id] = fr.parse("initial_percentages."+id, p)
		}
	}
	if fr.err != nil {
		return entities.EstimationSheet{}, fmt.Errorf("estimation %s: %w", it.ID, fr.err)
	}
	return s, nil
}

func toCostLineItems(lines []entities.CostLine) []costLineItem {
	out := make([]costLineItem, len(lines))
	for i, l := range lines {
		out[i] = costLineItem{
			ID:        l.ID,
			CatalogID: l.CatalogID,
			Name:      l.Name,
			Kind:      string(l.Kind),
			Amount:    floatToString(l.Amount),
			NoValue:   l.NoValue,
		}
	}
	return out
}

// fromCostLineItems accepts items written before lines carried an id or a
// kind; the kind comes from the list they are stored in.
func fromCostLineItems(fr *floatReader, items []costLineItem, kind entities.CostLineKind) []entities.CostLine {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.CostLine, len(items))
	for i, it := range items {
		out[i] = entities.CostLine{
			ID:        it.ID,
			CatalogID: it.CatalogID,
			Name:      it.Name,
			Kind:      kind,
			Amount:    fr.parse("amount", it.Amount),
			NoValue:   it.NoValue,
		}
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}
