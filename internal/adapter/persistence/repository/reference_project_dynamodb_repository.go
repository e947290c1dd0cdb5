package repository

import (
	"context"
	"fmt"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const (
	defaultReferenceProjectsTableName  = "reference_projects"
	referenceProjectsConstructionIndex = "construction_type_id-index"
)

type surfaceSampleItem struct {
	SurfaceTypeName string `dynamodbav:"surface_type_name"`
	SurfaceValue    string `dynamodbav:"surface_value"`
}

type referenceProjectItem struct {
	ID                 string              `dynamodbav:"id"`
	Name               string              `dynamodbav:"name"`
	ConstructionTypeID string              `dynamodbav:"construction_type_id"`
	FloorCount         *int                `dynamodbav:"floor_count,omitempty"`
	TotalSurface       string              `dynamodbav:"total_surface,omitempty"`
	StructureType      string              `dynamodbav:"structure_type,omitempty"`
	RoofType           string              `dynamodbav:"roof_type,omitempty"`
	JoineryType        string              `dynamodbav:"joinery_type,omitempty"`
	FloorType          string              `dynamodbav:"floor_type,omitempty"`
	FoundationType     string              `dynamodbav:"foundation_type,omitempty"`
	CostSheets         []string            `dynamodbav:"cost_sheets,omitempty"`
	Surfaces           []surfaceSampleItem `dynamodbav:"surfaces,omitempty"`
}

// ReferenceProjectDynamoRepository reads completed projects from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI construction_type_id-index: construction_type_id (string) HASH
//
// Each item carries the project's technical attributes, the names of its cost
// sheet files (cost_sheets) and its recorded surfaces (surfaces).
type ReferenceProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReferenceProjectRepository = (*ReferenceProjectDynamoRepository)(nil)

func NewReferenceProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *ReferenceProjectDynamoRepository {
	return &ReferenceProjectDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrDefault(tableName, defaultReferenceProjectsTableName),
	}
}

func (r *ReferenceProjectDynamoRepository) ListByConstructionType(ctx context.Context, constructionTypeID string) ([]entities.ReferenceProject, error) {
	var (
		projects []entities.ReferenceProject
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(referenceProjectsConstructionIndex),
			KeyConditionExpression: aws.String("construction_type_id = :ctid"),
			ProjectionExpression:   aws.String("id, #name, construction_type_id"),
			ExpressionAttributeNames: map[string]string{
				"#name": "name",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ctid": &types.AttributeValueMemberS{Value: constructionTypeID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it referenceProjectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			projects = append(projects, fromReferenceProjectItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return projects, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ReferenceProjectDynamoRepository) GetTechnicalAttributes(ctx context.Context, projectID string) (entities.ReferenceProject, error) {
	it, found, err := r.get(ctx, projectID, "")
	if err != nil || !found {
		return entities.ReferenceProject{}, err
	}
	return fromReferenceProjectItem(it), nil
}

func (r *ReferenceProjectDynamoRepository) ListCostSheets(ctx context.Context, projectID string) ([]entities.CostSheetRef, error) {
	it, _, err := r.get(ctx, projectID, "id, cost_sheets")
	if err != nil {
		return nil, err
	}
	refs := make([]entities.CostSheetRef, 0, len(it.CostSheets))
	for _, name := range it.CostSheets {
		refs = append(refs, entities.CostSheetRef(name))
	}
	return refs, nil
}

func (r *ReferenceProjectDynamoRepository) GetSurfaceSamples(ctx context.Context, projectID string) ([]entities.SurfaceSample, error) {
	it, _, err := r.get(ctx, projectID, "id, surfaces")
	if err != nil {
		return nil, err
	}
	samples := make([]entities.SurfaceSample, 0, len(it.Surfaces))
	var fr floatReader
	for _, s := range it.Surfaces {
		samples = append(samples, entities.SurfaceSample{
			SurfaceTypeName: s.SurfaceTypeName,
			SurfaceValue:    fr.parse("surfaces."+s.SurfaceTypeName, s.SurfaceValue),
		})
	}
	if fr.err != nil {
		return nil, fmt.Errorf("reference project %s: %w", projectID, fr.err)
	}
	return samples, nil
}

func (r *ReferenceProjectDynamoRepository) get(ctx context.Context, projectID, projection string) (referenceProjectItem, bool, error) {
	in := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: projectID},
		},
	}
	if projection != "" {
		in.ProjectionExpression = aws.String(projection)
	}

	out, err := r.ddb.GetItem(ctx, in)
	if err != nil {
		return referenceProjectItem{}, false, err
	}
	if len(out.Item) == 0 {
		return referenceProjectItem{}, false, nil
	}

	var it referenceProjectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return referenceProjectItem{}, false, err
	}
	return it, true, nil
}

func fromReferenceProjectItem(it referenceProjectItem) entities.ReferenceProject {
	p := entities.ReferenceProject{
		ID:                 it.ID,
		Name:               it.Name,
		ConstructionTypeID: it.ConstructionTypeID,
		TechnicalAttributes: entities.TechnicalAttributes{
			FloorCount:     it.FloorCount,
			StructureType:  it.StructureType,
			RoofType:       it.RoofType,
			JoineryType:    it.JoineryType,
			FloorType:      it.FloorType,
			FoundationType: it.FoundationType,
		},
	}
	if it.TotalSurface != "" {
		v, err := parseFloat("total_surface", it.TotalSurface)
		if err != nil {
			log.Warn().Err(err).Str("project_id", it.ID).Msg("[projects][repository] ignoring unreadable total surface")
		} else {
			p.TotalSurface = entities.FloatPtr(v)
		}
	}
	return p
}
