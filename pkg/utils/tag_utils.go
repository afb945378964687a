package utils

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// GetTagValue returns the value of a tag with the given key
func GetTagValue(tags []types.Tag, key string) string {
	for _, tag := range tags {
		if tag.Key != nil && *tag.Key == key {
			if tag.Value != nil {
				return *tag.Value
			}
			return ""
		}
	}
	return ""
}

// GetNameOrDefault returns the value of the Name tag, or "Unnamed" when the
// resource carries no Name tag
func GetNameOrDefault(tags []types.Tag) string {
	if name := GetTagValue(tags, "Name"); name != "" {
		return name
	}
	return "Unnamed"
}

// GetTagsMap converts a slice of tags to a map
func GetTagsMap(tags []types.Tag) map[string]string {
	result := make(map[string]string)
	for _, tag := range tags {
		if tag.Key != nil && tag.Value != nil {
			result[*tag.Key] = *tag.Value
		}
	}
	return result
}

// ConvertToEC2Tags converts a map of tags to a slice of EC2 tags
func ConvertToEC2Tags(tags map[string]string) []types.Tag {
	var result []types.Tag
	for k, v := range tags {
		result = append(result, types.Tag{
			Key:   aws.String(k),
			Value: aws.String(v),
		})
	}
	return result
}

// HasTag checks if a resource has a tag with the given key
func HasTag(tags []types.Tag, key string) bool {
	for _, tag := range tags {
		if tag.Key != nil && *tag.Key == key {
			return true
		}
	}
	return false
}
