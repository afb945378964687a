package models

import "time"

// NATGatewayInfo represents a NAT gateway and its carrying cost
type NATGatewayInfo struct {
	NatGatewayID         string
	Name                 string
	State                string
	VpcID                string
	SubnetID             string
	Region               string
	CreateTime           time.Time
	EstimatedMonthlyCost float64
}

// VPCEndpointInfo represents a VPC endpoint
type VPCEndpointInfo struct {
	EndpointID           string
	ServiceName          string
	EndpointType         string // "Interface" or "Gateway"
	State                string
	VpcID                string
	Region               string
	EstimatedMonthlyCost float64
}

// SecurityGroupInfo represents a security group with no references
type SecurityGroupInfo struct {
	GroupID     string
	GroupName   string
	Description string
	VpcID       string
	Region      string
}

// FlowLogInfo represents a VPC flow log and its destination
type FlowLogInfo struct {
	FlowLogID       string
	ResourceID      string
	Status          string
	DestinationType string
	LogGroupName    string
	LogGroupExists  bool
	Region          string
}

// VPCAuditResult bundles the per-region VPC findings
type VPCAuditResult struct {
	Region       string
	NATGateways  []NATGatewayInfo
	Endpoints    []VPCEndpointInfo
	UnusedGroups []SecurityGroupInfo
	FlowLogs     []FlowLogInfo
}
