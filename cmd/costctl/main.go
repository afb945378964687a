package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/internal/version"
	"github.com/costctl/costctl/pkg/aws"
	"github.com/costctl/costctl/pkg/cleanup"
	"github.com/costctl/costctl/pkg/formatter"
	"github.com/costctl/costctl/pkg/pricing"
	"github.com/costctl/costctl/pkg/utils"
)

const DefaultService = "ebs"

var (
	regions         []string
	allRegions      bool
	services        []string
	snapshotAge     int
	runCleanup      bool
	showVersion     bool
	showServiceList bool

	supportedServices = map[string]bool{
		"ebs":        true,
		"snapshot":   true,
		"ec2":        true,
		"eip":        true,
		"eni":        true,
		"vpc":        true,
		"route53":    true,
		"rds":        true,
		"kms":        true,
		"backup":     true,
		"cloudwatch": true,
		"ga":         true,
		"lightsail":  true,
		"efs":        true,
		"lambda":     true,
		"s3":         true,
		"billing":    true,
	}
)

// Service descriptions for help text
var serviceDescriptions = map[string]string{
	"ebs":        "Find available (unattached) EBS volumes",
	"snapshot":   "Find old EBS snapshots",
	"ec2":        "Find stopped EC2 instances and their storage cost",
	"eip":        "Find unassociated Elastic IPs",
	"eni":        "Find detached network interfaces",
	"vpc":        "Audit NAT gateways, endpoints, security groups and flow logs",
	"route53":    "Audit hosted zones and health checks",
	"rds":        "List RDS instances and Aurora clusters with cost estimates",
	"kms":        "Find customer-managed KMS keys",
	"backup":     "Audit AWS Backup plans, DLM policies and scheduled rules",
	"cloudwatch": "Audit alarms, dashboards and Synthetics canaries",
	"ga":         "Find Global Accelerator accelerators",
	"lightsail":  "List Lightsail instances and databases",
	"efs":        "List EFS file systems with cost estimates",
	"lambda":     "List Lambda functions",
	"s3":         "Find empty S3 buckets",
	"billing":    "Show today's cost per service from Cost Explorer",
}

// Cleanup support per service, used for the help text and gating
var cleanupServices = map[string]bool{
	"ebs":      true,
	"snapshot": true,
	"ec2":      true,
	"eip":      true,
	"eni":      true,
	"route53":  true,
}

// startResourceSpinner creates and starts a spinner with a message for the given service
func startResourceSpinner(service string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Analyzing %s resources ...", service)
	s.Start()
	return s
}

// regionResult holds one region's scan output
type regionResult[T any] struct {
	items  []T
	err    error
	region string
}

// scanRegions runs fetch against every region in parallel and collects
// the results in region order.
func scanRegions[T any](regions []string, fetch func(region string) ([]T, error)) []regionResult[T] {
	results := make([]regionResult[T], len(regions))

	var wg sync.WaitGroup
	for i, region := range regions {
		wg.Add(1)
		go func(idx int, r string) {
			defer wg.Done()
			items, err := fetch(r)
			results[idx] = regionResult[T]{items: items, err: err, region: r}
		}(i, region)
	}
	wg.Wait()

	return results
}

// collect flattens region results, printing per-region errors as it goes
func collect[T any](results []regionResult[T]) []T {
	var all []T
	for _, result := range results {
		if result.err != nil {
			fmt.Printf("Error in region %s: %v\n", result.region, result.err)
			continue
		}
		all = append(all, result.items...)
	}
	return all
}

func countItems[T any](results []regionResult[T]) int {
	n := 0
	for _, result := range results {
		if result.err == nil {
			n += len(result.items)
		}
	}
	return n
}

func finishScan[T any](s *spinner.Spinner, service, noun string, results []regionResult[T], scanDuration time.Duration) {
	s.FinalMSG = fmt.Sprintf("✓ [%d %s found] %s resources analyzed - Completed in %.2f seconds\n",
		countItems(results), noun, service, scanDuration.Seconds())
	s.Stop()

	if msg := pricing.GetInitMessage(); msg != "" {
		fmt.Println(msg)
	}
}

func main() {
	// Static credentials from ~/.env take effect before any client is built
	if err := utils.LoadCredentialsEnv(); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}

	rootCmd := &cobra.Command{
		Use:   "costctl",
		Short: "CLI tool to audit AWS resources for cost waste",
		Long: `costctl scans AWS accounts for idle and forgotten resources,
estimates what they cost per month, and optionally cleans them up.`,
		Run: run,
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().BoolVarP(&showServiceList, "list-services", "l", false, "List available services")

	defaultRegions := []string{utils.GetDefaultRegion()}
	rootCmd.Flags().StringSliceVarP(&regions, "regions", "r", nil,
		fmt.Sprintf("AWS regions to check (comma separated, default: %s)", strings.Join(defaultRegions, ", ")))
	rootCmd.Flags().BoolVarP(&allRegions, "all-regions", "A", false,
		"Scan every enabled region in the account")

	rootCmd.Flags().StringSliceVarP(&services, "services", "s", nil,
		fmt.Sprintf("AWS services to check (comma separated, default: %s)", DefaultService))

	rootCmd.Flags().IntVar(&snapshotAge, "snapshot-age", 30,
		"Age in days after which an EBS snapshot counts as old")
	rootCmd.Flags().BoolVar(&runCleanup, "cleanup", false,
		"Offer to delete the resources found (asks for confirmation)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	if showVersion {
		info := version.Get()
		fmt.Printf("costctl version %s (commit: %s, built: %s, %s)\n",
			info.Version, info.GitCommit, info.BuildDate, info.GoVersion)
		return
	}

	if showServiceList {
		printServiceList()
		return
	}

	validRegions := resolveRegions()
	if len(validRegions) == 0 {
		fmt.Println("No valid regions specified. Exiting.")
		return
	}

	if len(services) == 0 {
		services = []string{DefaultService}
	}

	var activeServices []string
	for _, service := range services {
		if supported, exists := supportedServices[service]; exists && supported {
			activeServices = append(activeServices, service)
		} else {
			fmt.Printf("Warning: Unknown service '%s'\n", service)
		}
	}

	if len(activeServices) == 0 {
		fmt.Println("No supported services specified. Exiting.")
		return
	}

	if runCleanup {
		for _, service := range activeServices {
			if !cleanupServices[service] {
				fmt.Printf("Note: --cleanup is not supported for '%s', scan only\n", service)
			}
		}
	}

	for _, service := range activeServices {
		switch service {
		case "ebs":
			processEBS(validRegions)
		case "snapshot":
			processSnapshots(validRegions)
		case "ec2":
			processEC2(validRegions)
		case "eip":
			processEIP(validRegions)
		case "eni":
			processENI(validRegions)
		case "vpc":
			processVPC(validRegions)
		case "route53":
			processRoute53(validRegions)
		case "rds":
			processRDS(validRegions)
		case "kms":
			processKMS(validRegions)
		case "backup":
			processBackup(validRegions)
		case "cloudwatch":
			processCloudWatch(validRegions)
		case "ga":
			processGlobalAccelerator()
		case "lightsail":
			processLightsail(validRegions)
		case "efs":
			processEFS(validRegions)
		case "lambda":
			processLambda(validRegions)
		case "s3":
			processS3(validRegions)
		case "billing":
			processBilling()
		}
	}

	// Combined pricing API statistics once after all services are processed
	formatter.PrintPricingAPIStats(os.Stdout)
}

func printServiceList() {
	fmt.Println("Available services:")

	var serviceList []string
	for service, isSupported := range supportedServices {
		if isSupported {
			serviceList = append(serviceList, service)
		}
	}
	sort.Strings(serviceList)

	for _, service := range serviceList {
		description, ok := serviceDescriptions[service]
		if !ok {
			description = "No description available"
		}

		suffix := ""
		if service == DefaultService {
			suffix = " (default)"
		}
		if cleanupServices[service] {
			suffix += " [cleanup]"
		}
		fmt.Printf("  %-10s - %s%s\n", service, description, suffix)
	}

	fmt.Println("\nExample usage:")
	fmt.Printf("  %s --services %s\n", os.Args[0], strings.Join(serviceList[:3], ","))
}

// resolveRegions turns the flags into a validated region list
func resolveRegions() []string {
	if allRegions {
		discovered, err := aws.GetAllRegions()
		if err != nil {
			fmt.Printf("Warning: could not list regions, using fallback set: %v\n", err)
		}
		return discovered
	}

	if len(regions) == 0 {
		regions = []string{utils.GetDefaultRegion()}
	}

	var validRegions []string
	for _, region := range regions {
		if utils.IsValidRegion(region) {
			validRegions = append(validRegions, region)
		} else {
			fmt.Printf("Warning: Skipping invalid region '%s'\n", region)
		}
	}
	return validRegions
}

// processEBS handles the scanning of available EBS volumes
func processEBS(regions []string) {
	fmt.Println("Starting EBS scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("EBS")

	results := scanRegions(regions, func(r string) ([]models.VolumeInfo, error) {
		client, err := aws.NewEBSClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetAvailableVolumes()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "EBS", "volumes", results, scanDuration)

	volumes := collect(results)
	formatter.PrintVolumesTable(os.Stdout, volumes)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
	formatter.PrintVolumesSummary(os.Stdout, volumes)

	if runCleanup && len(volumes) > 0 {
		cleanupVolumes(volumes)
	}
}

func cleanupVolumes(volumes []models.VolumeInfo) {
	prompt := fmt.Sprintf("Delete all %d available volumes?", len(volumes))
	if !cleanup.Confirm(os.Stdin, os.Stdout, prompt) {
		fmt.Println("Cleanup cancelled.")
		return
	}

	for _, volume := range volumes {
		if !volume.IsCleanupCandidate() {
			continue
		}
		client, err := aws.NewEBSClient(volume.Region)
		if err != nil {
			fmt.Printf("  %s: %v\n", volume.VolumeID, err)
			continue
		}
		if err := client.DeleteVolume(volume.VolumeID); err != nil {
			fmt.Printf("  %s: %v\n", volume.VolumeID, err)
			continue
		}
		fmt.Printf("  Deleted %s (%s, %d GB)\n", volume.VolumeID, volume.Region, volume.Size)
	}
}

// processSnapshots handles the scanning of old EBS snapshots
func processSnapshots(regions []string) {
	fmt.Printf("Starting snapshot scan (older than %d days) ...\n", snapshotAge)
	scanStartTime := time.Now()
	s := startResourceSpinner("Snapshot")

	results := scanRegions(regions, func(r string) ([]models.SnapshotInfo, error) {
		client, err := aws.NewSnapshotClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetOldSnapshots(snapshotAge)
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "Snapshot", "snapshots", results, scanDuration)

	snapshots := collect(results)
	formatter.PrintSnapshotsTable(os.Stdout, snapshots)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
	formatter.PrintSnapshotsSummary(os.Stdout, snapshots)

	if runCleanup && len(snapshots) > 0 {
		cleanupSnapshots(snapshots)
	}
}

func cleanupSnapshots(snapshots []models.SnapshotInfo) {
	prompt := fmt.Sprintf("Delete all %d old snapshots?", len(snapshots))
	if !cleanup.Confirm(os.Stdin, os.Stdout, prompt) {
		fmt.Println("Cleanup cancelled.")
		return
	}

	for _, snapshot := range snapshots {
		client, err := aws.NewSnapshotClient(snapshot.Region)
		if err != nil {
			fmt.Printf("  %s: %v\n", snapshot.SnapshotID, err)
			continue
		}
		if err := client.DeleteSnapshot(snapshot.SnapshotID); err != nil {
			fmt.Printf("  %s: %v\n", snapshot.SnapshotID, err)
			continue
		}
		fmt.Printf("  Deleted %s (%s, %d GB)\n", snapshot.SnapshotID, snapshot.Region, snapshot.SizeGB)
	}
}

// processEC2 handles the scanning of stopped EC2 instances
func processEC2(regions []string) {
	fmt.Println("Starting EC2 scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("EC2")

	results := scanRegions(regions, func(r string) ([]models.InstanceInfo, error) {
		client, err := aws.NewEC2Client(r)
		if err != nil {
			return nil, err
		}
		return client.GetStoppedInstances()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "EC2", "instances", results, scanDuration)

	instances := collect(results)
	formatter.PrintInstancesTable(os.Stdout, instances)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
	formatter.PrintInstancesSummary(os.Stdout, instances)

	if runCleanup && len(instances) > 0 {
		cleanupInstances(instances)
	}
}

func cleanupInstances(instances []models.InstanceInfo) {
	prompt := fmt.Sprintf("Terminate all %d stopped instances? This cannot be undone", len(instances))
	if !cleanup.Confirm(os.Stdin, os.Stdout, prompt) {
		fmt.Println("Cleanup cancelled.")
		return
	}

	for _, instance := range instances {
		client, err := aws.NewEC2Client(instance.Region)
		if err != nil {
			fmt.Printf("  %s: %v\n", instance.InstanceID, err)
			continue
		}
		state, err := client.TerminateInstance(instance.InstanceID)
		if err != nil {
			fmt.Printf("  %s: %v\n", instance.InstanceID, err)
			continue
		}
		fmt.Printf("  %s (%s): %s\n", instance.InstanceID, instance.Region, state)
	}
}

// processEIP handles the scanning of unassociated Elastic IPs
func processEIP(regions []string) {
	fmt.Println("Starting EIP scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("EIP")

	results := scanRegions(regions, func(r string) ([]models.EIPInfo, error) {
		client, err := aws.NewEIPClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetUnassociatedEIPs()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "EIP", "addresses", results, scanDuration)

	eips := collect(results)
	formatter.PrintEIPsTable(os.Stdout, eips)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
	formatter.PrintEIPsSummary(os.Stdout, eips)

	if runCleanup && len(eips) > 0 {
		cleanupEIPs(eips)
	}
}

func cleanupEIPs(eips []models.EIPInfo) {
	prompt := fmt.Sprintf("Release all %d unassociated Elastic IPs?", len(eips))
	if !cleanup.Confirm(os.Stdin, os.Stdout, prompt) {
		fmt.Println("Cleanup cancelled.")
		return
	}

	for _, eip := range eips {
		client, err := aws.NewEIPClient(eip.Region)
		if err != nil {
			fmt.Printf("  %s: %v\n", eip.PublicIP, err)
			continue
		}
		if err := client.ReleaseAddress(eip.AllocationID); err != nil {
			fmt.Printf("  %s: %v\n", eip.PublicIP, err)
			continue
		}
		fmt.Printf("  Released %s (%s)\n", eip.PublicIP, eip.Region)
	}
}

// processENI handles the scanning of detached network interfaces
func processENI(regions []string) {
	fmt.Println("Starting ENI scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("ENI")

	results := scanRegions(regions, func(r string) ([]models.ENIInfo, error) {
		client, err := aws.NewENIClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetUnusedInterfaces()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "ENI", "interfaces", results, scanDuration)

	enis := collect(results)
	formatter.PrintENIsTable(os.Stdout, enis)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)

	if runCleanup && len(enis) > 0 {
		cleanupENIs(enis)
	}
}

func cleanupENIs(enis []models.ENIInfo) {
	prompt := fmt.Sprintf("Delete all %d unused network interfaces?", len(enis))
	if !cleanup.Confirm(os.Stdin, os.Stdout, prompt) {
		fmt.Println("Cleanup cancelled.")
		return
	}

	for _, eni := range enis {
		if !eni.IsUnused() {
			continue
		}
		client, err := aws.NewENIClient(eni.Region)
		if err != nil {
			fmt.Printf("  %s: %v\n", eni.InterfaceID, err)
			continue
		}
		if err := client.DeleteInterface(eni.InterfaceID); err != nil {
			fmt.Printf("  %s: %v\n", eni.InterfaceID, err)
			continue
		}
		fmt.Printf("  Deleted %s (%s)\n", eni.InterfaceID, eni.Region)
	}
}

// processVPC handles the per-region VPC audit
func processVPC(regions []string) {
	fmt.Println("Starting VPC audit ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("VPC")

	results := scanRegions(regions, func(r string) ([]models.VPCAuditResult, error) {
		client, err := aws.NewVPCClient(r)
		if err != nil {
			return nil, err
		}
		result, err := client.AuditRegion()
		if err != nil {
			return nil, err
		}
		return []models.VPCAuditResult{*result}, nil
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "VPC", "regions", results, scanDuration)

	formatter.PrintVPCAuditResults(os.Stdout, collect(results))
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processRoute53 audits hosted zones and health checks. Route 53 is a
// global service, so only one client is needed.
func processRoute53(regions []string) {
	fmt.Println("Starting Route 53 audit ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("Route53")

	client, err := aws.NewRoute53Client(regions[0])
	if err != nil {
		s.Stop()
		fmt.Printf("Error creating Route 53 client: %v\n", err)
		return
	}

	zones, zonesErr := client.GetHostedZones()
	healthChecks, healthChecksErr := client.GetHealthChecks()

	scanDuration := time.Since(scanStartTime)
	s.FinalMSG = fmt.Sprintf("✓ [%d zones, %d health checks found] Route53 resources analyzed - Completed in %.2f seconds\n",
		len(zones), len(healthChecks), scanDuration.Seconds())
	s.Stop()

	if zonesErr != nil {
		fmt.Printf("Error listing hosted zones: %v\n", zonesErr)
	}
	if healthChecksErr != nil {
		fmt.Printf("Error listing health checks: %v\n", healthChecksErr)
	}

	formatter.PrintHostedZonesTable(os.Stdout, zones)
	formatter.PrintHealthChecksTable(os.Stdout, healthChecks)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)

	if runCleanup {
		cleanupRoute53(client, zones, healthChecks)
	}
}

func cleanupRoute53(client *aws.Route53Client, zones []models.ZoneInfo, healthChecks []models.HealthCheckInfo) {
	if len(healthChecks) > 0 {
		prompt := fmt.Sprintf("Delete all %d health checks?", len(healthChecks))
		if cleanup.Confirm(os.Stdin, os.Stdout, prompt) {
			for _, healthCheck := range healthChecks {
				if err := client.DeleteHealthCheck(healthCheck.HealthCheckID); err != nil {
					fmt.Printf("  %s: %v\n", healthCheck.HealthCheckID, err)
					continue
				}
				fmt.Printf("  Deleted health check %s\n", healthCheck.HealthCheckID)
			}
		}
	}

	// Only zones holding nothing but the default NS and SOA records
	// can be removed without data loss.
	var emptyZones []models.ZoneInfo
	for _, zone := range zones {
		if zone.NonDefaultRecords == 0 {
			emptyZones = append(emptyZones, zone)
		}
	}
	if len(emptyZones) == 0 {
		return
	}

	prompt := fmt.Sprintf("Delete %d hosted zones with no extra records?", len(emptyZones))
	if !cleanup.Confirm(os.Stdin, os.Stdout, prompt) {
		fmt.Println("Cleanup cancelled.")
		return
	}
	for _, zone := range emptyZones {
		if err := client.DeleteHostedZone(zone.ZoneID); err != nil {
			fmt.Printf("  %s: %v\n", zone.Name, err)
			continue
		}
		fmt.Printf("  Deleted zone %s (%s)\n", zone.Name, zone.ZoneID)
	}
}

// processRDS handles the scanning of RDS instances and Aurora clusters
func processRDS(regions []string) {
	fmt.Println("Starting RDS scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("RDS")

	instanceResults := scanRegions(regions, func(r string) ([]models.DBInstanceInfo, error) {
		client, err := aws.NewRDSClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetDBInstances()
	})
	clusterResults := scanRegions(regions, func(r string) ([]models.DBClusterInfo, error) {
		client, err := aws.NewRDSClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetDBClusters()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "RDS", "instances", instanceResults, scanDuration)

	formatter.PrintDBInstancesTable(os.Stdout, collect(instanceResults))
	formatter.PrintDBClustersTable(os.Stdout, collect(clusterResults))
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processKMS handles the scanning of customer-managed KMS keys
func processKMS(regions []string) {
	fmt.Println("Starting KMS scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("KMS")

	results := scanRegions(regions, func(r string) ([]models.KeyInfo, error) {
		client, err := aws.NewKMSClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetCustomerManagedKeys()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "KMS", "keys", results, scanDuration)

	formatter.PrintKMSKeysTable(os.Stdout, collect(results))
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processBackup audits Backup plans, DLM policies and scheduled rules
func processBackup(regions []string) {
	fmt.Println("Starting backup audit ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("Backup")

	planResults := scanRegions(regions, func(r string) ([]models.BackupPlanInfo, error) {
		client, err := aws.NewBackupClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetBackupPlans()
	})
	policyResults := scanRegions(regions, func(r string) ([]models.DLMPolicyInfo, error) {
		client, err := aws.NewBackupClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetDLMPolicies()
	})
	ruleResults := scanRegions(regions, func(r string) ([]models.ScheduledRuleInfo, error) {
		client, err := aws.NewBackupClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetScheduledRules()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "Backup", "plans", planResults, scanDuration)

	formatter.PrintBackupPlansTable(os.Stdout, collect(planResults))
	formatter.PrintDLMPoliciesTable(os.Stdout, collect(policyResults))
	formatter.PrintScheduledRulesTable(os.Stdout, collect(ruleResults))
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processCloudWatch audits alarms, dashboards and canaries
func processCloudWatch(regions []string) {
	fmt.Println("Starting CloudWatch audit ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("CloudWatch")

	alarmResults := scanRegions(regions, func(r string) ([]models.AlarmInfo, error) {
		client, err := aws.NewCloudWatchClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetAlarms()
	})
	dashboardResults := scanRegions(regions, func(r string) ([]models.DashboardInfo, error) {
		client, err := aws.NewCloudWatchClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetDashboards()
	})
	canaryResults := scanRegions(regions, func(r string) ([]models.CanaryInfo, error) {
		client, err := aws.NewCloudWatchClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetCanaries()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "CloudWatch", "alarms", alarmResults, scanDuration)

	formatter.PrintAlarmsTable(os.Stdout, collect(alarmResults))
	formatter.PrintDashboardsTable(os.Stdout, collect(dashboardResults))
	formatter.PrintCanariesTable(os.Stdout, collect(canaryResults))
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processGlobalAccelerator lists accelerators. The API lives in a single
// region, so the region flags do not apply.
func processGlobalAccelerator() {
	fmt.Println("Starting Global Accelerator scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("GlobalAccelerator")

	client, err := aws.NewGlobalAcceleratorClient()
	if err != nil {
		s.Stop()
		fmt.Printf("Error creating Global Accelerator client: %v\n", err)
		return
	}

	accelerators, err := client.GetAccelerators()

	scanDuration := time.Since(scanStartTime)
	s.FinalMSG = fmt.Sprintf("✓ [%d accelerators found] GlobalAccelerator resources analyzed - Completed in %.2f seconds\n",
		len(accelerators), scanDuration.Seconds())
	s.Stop()

	if err != nil {
		fmt.Printf("Error listing accelerators: %v\n", err)
		return
	}

	formatter.PrintAcceleratorsTable(os.Stdout, accelerators)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processLightsail lists Lightsail instances and databases
func processLightsail(regions []string) {
	fmt.Println("Starting Lightsail scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("Lightsail")

	instanceResults := scanRegions(regions, func(r string) ([]models.LightsailInstanceInfo, error) {
		client, err := aws.NewLightsailClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetInstances()
	})
	databaseResults := scanRegions(regions, func(r string) ([]models.LightsailDatabaseInfo, error) {
		client, err := aws.NewLightsailClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetDatabases()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "Lightsail", "instances", instanceResults, scanDuration)

	formatter.PrintLightsailInstancesTable(os.Stdout, collect(instanceResults))
	formatter.PrintLightsailDatabasesTable(os.Stdout, collect(databaseResults))
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processEFS lists EFS file systems
func processEFS(regions []string) {
	fmt.Println("Starting EFS scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("EFS")

	results := scanRegions(regions, func(r string) ([]models.FileSystemInfo, error) {
		client, err := aws.NewEFSClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetFileSystems()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "EFS", "file systems", results, scanDuration)

	formatter.PrintFileSystemsTable(os.Stdout, collect(results))
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processLambda lists Lambda functions
func processLambda(regions []string) {
	fmt.Println("Starting Lambda scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("Lambda")

	results := scanRegions(regions, func(r string) ([]models.FunctionInfo, error) {
		client, err := aws.NewLambdaClient(r)
		if err != nil {
			return nil, err
		}
		return client.GetFunctions()
	})

	scanDuration := time.Since(scanStartTime)
	finishScan(s, "Lambda", "functions", results, scanDuration)

	formatter.PrintFunctionsTable(os.Stdout, collect(results))
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processS3 finds empty buckets. Buckets are listed once from the first
// region; each bucket is inspected in its home region.
func processS3(regions []string) {
	fmt.Println("Starting S3 scan ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("S3")

	client, err := aws.NewS3Client(regions[0])
	if err != nil {
		s.Stop()
		fmt.Printf("Error creating S3 client: %v\n", err)
		return
	}

	buckets, err := client.GetEmptyBucketCandidates()

	scanDuration := time.Since(scanStartTime)
	s.FinalMSG = fmt.Sprintf("✓ [%d buckets found] S3 resources analyzed - Completed in %.2f seconds\n",
		len(buckets), scanDuration.Seconds())
	s.Stop()

	if err != nil {
		fmt.Printf("Error listing buckets: %v\n", err)
		return
	}

	formatter.PrintBucketsTable(os.Stdout, buckets)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}

// processBilling prints today's cost per service from Cost Explorer
func processBilling() {
	fmt.Println("Fetching today's costs from Cost Explorer ...")
	scanStartTime := time.Now()
	s := startResourceSpinner("Billing")

	client, err := aws.NewCostExplorerClient()
	if err != nil {
		s.Stop()
		fmt.Printf("Error creating Cost Explorer client: %v\n", err)
		return
	}

	costs, err := client.GetTodayCostByService()

	scanDuration := time.Since(scanStartTime)
	s.FinalMSG = fmt.Sprintf("✓ [%d services billed] Cost data fetched - Completed in %.2f seconds\n",
		len(costs), scanDuration.Seconds())
	s.Stop()

	if err != nil {
		fmt.Printf("Error fetching cost data: %v\n", err)
		return
	}

	formatter.PrintServiceCostsTable(os.Stdout, costs)
	formatter.PrintScanTimestamp(os.Stdout, scanStartTime, scanDuration)
}
