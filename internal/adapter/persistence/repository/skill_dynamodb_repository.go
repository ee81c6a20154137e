package repository

import (
	"context"

	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSkillsTableName = "skills"

type skillItem struct {
	ID          string `dynamodbav:"id"`
	SkillName   string `dynamodbav:"skill_name"`
	Description string `dynamodbav:"description,omitempty"`
}

// SkillDynamoRepository reads the skill catalog from DynamoDB.
//
// Table requirements:
//   - PK: skill_name (string)

type SkillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISkillRepository = (*SkillDynamoRepository)(nil)

func NewSkillDynamoRepository(ddb *dynamodb.Client) *SkillDynamoRepository {
	return &SkillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SKILLS_TABLE", defaultSkillsTableName),
	}
}

func (r *SkillDynamoRepository) GetByName(ctx context.Context, skillName string) (entities.Skill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"skill_name": &types.AttributeValueMemberS{Value: skillName},
		},
	})
	if err != nil {
		return entities.Skill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Skill{}, nil
	}

	var it skillItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Skill{}, err
	}
	return entities.Skill{ID: it.ID, SkillName: it.SkillName, Description: it.Description}, nil
}
