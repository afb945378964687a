package models

// ENIInfo represents Elastic Network Interface information
type ENIInfo struct {
	InterfaceID      string
	Name             string
	Status           string
	InterfaceType    string
	VpcID            string
	SubnetID         string
	PrivateIP        string
	PublicIP         string
	AttachedTo       string
	AttachmentStatus string
	Description      string
	Region           string
}

// IsUnused reports whether the interface is detached and removable
func (e ENIInfo) IsUnused() bool {
	return e.Status == "available" && e.AttachedTo == ""
}
