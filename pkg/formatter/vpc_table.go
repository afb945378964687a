package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/costctl/costctl/internal/models"
)

// PrintVPCAuditResults prints the per-region VPC findings in sections
func PrintVPCAuditResults(w io.Writer, results []models.VPCAuditResult) {
	var natGateways []models.NATGatewayInfo
	var endpoints []models.VPCEndpointInfo
	var unusedGroups []models.SecurityGroupInfo
	var flowLogs []models.FlowLogInfo

	for _, result := range results {
		natGateways = append(natGateways, result.NATGateways...)
		endpoints = append(endpoints, result.Endpoints...)
		unusedGroups = append(unusedGroups, result.UnusedGroups...)
		flowLogs = append(flowLogs, result.FlowLogs...)
	}

	printNATGateways(w, natGateways)
	printVPCEndpoints(w, endpoints)
	printUnusedSecurityGroups(w, unusedGroups)
	printFlowLogs(w, flowLogs)
}

func printNATGateways(w io.Writer, gateways []models.NATGatewayInfo) {
	fmt.Fprintln(w, "\n## NAT Gateways")

	if len(gateways) == 0 {
		fmt.Fprintln(w, "No NAT gateways found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tNAT GATEWAY ID\tSTATE\tVPC\tREGION\tMONTHLY COST")

	var totalCost float64
	for _, gateway := range gateways {
		name := PadToWidth(TruncateToWidth(gateway.Name, maxNameWidth), maxNameWidth)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			name,
			gateway.NatGatewayID,
			gateway.State,
			gateway.VpcID,
			gateway.Region,
			money(gateway.EstimatedMonthlyCost),
		)
		totalCost += gateway.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t%s (%d gateways)\n", money(totalCost), len(gateways))
	tw.Flush()
}

func printVPCEndpoints(w io.Writer, endpoints []models.VPCEndpointInfo) {
	fmt.Fprintln(w, "\n## VPC Endpoints")

	if len(endpoints) == 0 {
		fmt.Fprintln(w, "No VPC endpoints found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ENDPOINT ID\tTYPE\tSERVICE\tSTATE\tVPC\tREGION\tMONTHLY COST")

	var totalCost float64
	for _, endpoint := range endpoints {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			endpoint.EndpointID,
			endpoint.EndpointType,
			TruncateToWidth(endpoint.ServiceName, 45),
			endpoint.State,
			endpoint.VpcID,
			endpoint.Region,
			money(endpoint.EstimatedMonthlyCost),
		)
		totalCost += endpoint.EstimatedMonthlyCost
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t\t\t%s (%d endpoints)\n", money(totalCost), len(endpoints))
	tw.Flush()
}

func printUnusedSecurityGroups(w io.Writer, groups []models.SecurityGroupInfo) {
	fmt.Fprintln(w, "\n## Unused Security Groups")

	if len(groups) == 0 {
		fmt.Fprintln(w, "No unused security groups found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP ID\tNAME\tVPC\tREGION\tDESCRIPTION")

	for _, group := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			group.GroupID,
			TruncateToWidth(group.GroupName, 30),
			group.VpcID,
			group.Region,
			TruncateToWidth(group.Description, 40),
		)
	}

	fmt.Fprintf(tw, "Total:\t\t\t\t%d groups\n", len(groups))
	tw.Flush()
}

func printFlowLogs(w io.Writer, flowLogs []models.FlowLogInfo) {
	fmt.Fprintln(w, "\n## VPC Flow Logs")

	if len(flowLogs) == 0 {
		fmt.Fprintln(w, "No VPC flow logs found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "FLOW LOG ID\tRESOURCE\tSTATUS\tDESTINATION\tLOG GROUP\tEXISTS\tREGION")

	for _, flowLog := range flowLogs {
		logGroupExists := "-"
		if flowLog.DestinationType == "cloud-watch-logs" {
			logGroupExists = fmt.Sprintf("%t", flowLog.LogGroupExists)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			flowLog.FlowLogID,
			flowLog.ResourceID,
			flowLog.Status,
			flowLog.DestinationType,
			flowLog.LogGroupName,
			logGroupExists,
			flowLog.Region,
		)
	}

	tw.Flush()
}
