package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/utils"
)

// ENIClient struct for network interface client
type ENIClient struct {
	client *ec2.Client
	region string
}

// NewENIClient creates a new ENIClient
func NewENIClient(region string) (*ENIClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := ec2.NewFromConfig(cfg)
	return &ENIClient{
		client: client,
		region: region,
	}, nil
}

// GetUnusedInterfaces returns network interfaces in the available state with
// no attachment. These are usually leftovers from terminated instances.
func (c *ENIClient) GetUnusedInterfaces() ([]models.ENIInfo, error) {
	input := &ec2.DescribeNetworkInterfacesInput{}

	result, err := c.client.DescribeNetworkInterfaces(context.TODO(), input)
	if err != nil {
		return nil, fmt.Errorf("error querying network interfaces: %w", err)
	}

	interfaces := []models.ENIInfo{}

	for _, eni := range result.NetworkInterfaces {
		name := "Unnamed"
		for _, tag := range eni.TagSet {
			if tag.Key != nil && *tag.Key == "Name" && tag.Value != nil {
				name = *tag.Value
				break
			}
		}

		info := models.ENIInfo{
			InterfaceID:   utils.SafeDeref(eni.NetworkInterfaceId),
			Name:          name,
			Status:        string(eni.Status),
			InterfaceType: string(eni.InterfaceType),
			VpcID:         utils.SafeDeref(eni.VpcId),
			SubnetID:      utils.SafeDeref(eni.SubnetId),
			PrivateIP:     utils.SafeDeref(eni.PrivateIpAddress),
			Description:   utils.SafeDeref(eni.Description),
			Region:        c.region,
		}

		if eni.Association != nil {
			info.PublicIP = utils.SafeDeref(eni.Association.PublicIp)
		}
		if eni.Attachment != nil {
			info.AttachedTo = utils.SafeDeref(eni.Attachment.InstanceId)
			info.AttachmentStatus = string(eni.Attachment.Status)
		}

		if info.IsUnused() {
			interfaces = append(interfaces, info)
		}
	}

	return interfaces, nil
}

// DeleteInterface deletes a detached network interface
func (c *ENIClient) DeleteInterface(interfaceID string) error {
	input := &ec2.DeleteNetworkInterfaceInput{
		NetworkInterfaceId: aws.String(interfaceID),
	}

	if _, err := c.client.DeleteNetworkInterface(context.TODO(), input); err != nil {
		return fmt.Errorf("error deleting network interface %s: %w", interfaceID, err)
	}

	return nil
}
