package utils

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
)

func TestGetTagValue(t *testing.T) {
	tags := []types.Tag{
		{Key: awssdk.String("Name"), Value: awssdk.String("web-server")},
		{Key: awssdk.String("Env"), Value: awssdk.String("prod")},
	}

	assert.Equal(t, "web-server", GetTagValue(tags, "Name"))
	assert.Equal(t, "prod", GetTagValue(tags, "Env"))
	assert.Equal(t, "", GetTagValue(tags, "Team"))
	assert.Equal(t, "", GetTagValue(nil, "Name"))
}

func TestGetNameOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		tags     []types.Tag
		expected string
	}{
		{
			name: "name tag present",
			tags: []types.Tag{
				{Key: awssdk.String("Name"), Value: awssdk.String("db-primary")},
			},
			expected: "db-primary",
		},
		{
			name: "no name tag",
			tags: []types.Tag{
				{Key: awssdk.String("Env"), Value: awssdk.String("dev")},
			},
			expected: "Unnamed",
		},
		{
			name:     "no tags at all",
			tags:     nil,
			expected: "Unnamed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetNameOrDefault(tt.tags))
		})
	}
}

func TestHasTag(t *testing.T) {
	tags := []types.Tag{
		{Key: awssdk.String("Name"), Value: awssdk.String("x")},
	}

	assert.True(t, HasTag(tags, "Name"))
	assert.False(t, HasTag(tags, "Owner"))
}

func TestGetTagsMap(t *testing.T) {
	tags := []types.Tag{
		{Key: awssdk.String("Name"), Value: awssdk.String("x")},
		{Key: awssdk.String("Env"), Value: awssdk.String("prod")},
	}

	m := GetTagsMap(tags)
	assert.Len(t, m, 2)
	assert.Equal(t, "x", m["Name"])
	assert.Equal(t, "prod", m["Env"])
}
