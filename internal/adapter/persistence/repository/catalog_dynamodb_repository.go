package repository

import (
	"context"
	"fmt"
	"sort"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const DefaultCatalogTableName = "photo_studio_catalog"

const (
	itemKindPackage  = "package"
	itemKindLocation = "location"
	itemKindSpecCode = "spec_code"
)

// catalogItemHeader is read first to route an item to its entity.
type catalogItemHeader struct {
	Kind     string `dynamodbav:"kind"`
	Position int    `dynamodbav:"position"`
	SpecCode string `dynamodbav:"spec_code"`
}

// CatalogDynamoRepository reads the catalog from a DynamoDB table. The table
// is read-only for this service and is scanned on every Load.
//
// Table requirements:
//   - PK: id (string)
//   - kind: package | location | spec_code
//   - position (number, optional) orders items of the same kind
type CatalogDynamoRepository struct {
	ddb       dynamodb.ScanAPIClient
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb dynamodb.ScanAPIClient, tableName string) *CatalogDynamoRepository {
	if tableName == "" {
		tableName = DefaultCatalogTableName
	}
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

type positioned[T any] struct {
	position int
	value    T
}

func (r *CatalogDynamoRepository) Load(ctx context.Context) (entities.Catalog, error) {
	var (
		packages  []positioned[entities.ProductPackage]
		locations []positioned[entities.BusinessLocation]
		specCodes []positioned[string]
	)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return entities.Catalog{}, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		for _, item := range out.Items {
			var h catalogItemHeader
			if err := attributevalue.UnmarshalMap(item, &h); err != nil {
				return entities.Catalog{}, fmt.Errorf("decode catalog item: %w", err)
			}
			switch h.Kind {
			case itemKindPackage:
				var pkg entities.ProductPackage
				if err := attributevalue.UnmarshalMap(item, &pkg); err != nil {
					return entities.Catalog{}, fmt.Errorf("decode package: %w", err)
				}
				packages = append(packages, positioned[entities.ProductPackage]{h.Position, pkg})
			case itemKindLocation:
				var loc entities.BusinessLocation
				if err := attributevalue.UnmarshalMap(item, &loc); err != nil {
					return entities.Catalog{}, fmt.Errorf("decode location: %w", err)
				}
				locations = append(locations, positioned[entities.BusinessLocation]{h.Position, loc})
			case itemKindSpecCode:
				specCodes = append(specCodes, positioned[string]{h.Position, h.SpecCode})
			default:
				log.Warn().Str("component", "catalog.repository").Str("kind", h.Kind).Str("id", itemID(item)).Msg("skipping unknown catalog item")
			}
		}
	}

	c := entities.Catalog{
		ProductPackages:   sortedValues(packages),
		BusinessLocations: sortedValues(locations),
		DefaultSpecCodes:  sortedValues(specCodes),
	}
	if err := validateCatalog(c); err != nil {
		return entities.Catalog{}, err
	}
	return c, nil
}

func sortedValues[T any](items []positioned[T]) []T {
	sort.SliceStable(items, func(i, j int) bool { return items[i].position < items[j].position })
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.value
	}
	return out
}

func itemID(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
