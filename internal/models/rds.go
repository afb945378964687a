package models

import "time"

// DBInstanceInfo represents an RDS database instance
type DBInstanceInfo struct {
	Identifier           string
	Engine               string
	EngineVersion        string
	InstanceClass        string
	Status               string
	StorageGB            int
	StorageType          string
	MultiAZ              bool
	PubliclyAccessible   bool
	ClusterIdentifier    string
	Region               string
	CreateTime           *time.Time
	EstimatedMonthlyCost float64
}

// DBClusterInfo represents an Aurora cluster
type DBClusterInfo struct {
	Identifier       string
	Engine           string
	EngineVersion    string
	Status           string
	EngineMode       string
	MemberCount      int
	MinCapacityACU   float64
	MaxCapacityACU   float64
	StorageEncrypted bool
	Region           string
	CreateTime       *time.Time
}
