package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Jumpaku/go-driveops"
	"github.com/Jumpaku/go-driveops/config"
	"github.com/Jumpaku/go-driveops/driveopsmust"
)

func newAPI(ctx context.Context, configPath string) *driveopsmust.API {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Panic(err)
	}
	api, err := driveops.NewFromConfig(ctx, cfg)
	if err != nil {
		log.Panic(err)
	}
	return driveopsmust.Wrap(api)
}

var sc = func() *bufio.Scanner {
	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanLines)
	return sc
}()

func step() {
	sc.Scan()
}

// Usage: go run ./example CONFIG_PATH DRIVE_ID
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s CONFIG_PATH DRIVE_ID", os.Args[0])
	}
	ctx := context.Background()
	api := newAPI(ctx, os.Args[1])

	// Walk through every file of the shared drive, ten at a time
	var files []*driveops.Record
	api.FileListAll(ctx, driveops.FileListParams{DriveID: os.Args[2], OrderBy: "name", PageSize: 10}, func(page driveops.FilePage) error {
		files = append(files, page.Files...)
		return nil
	})
	for _, file := range files {
		fmt.Printf("%s (ID: %s)\n", driveops.RecordString(file, "name"), driveops.RecordString(file, "id"))
	}
	if len(files) == 0 {
		return
	}

	// List the permissions of the first file
	step()
	fileID := driveops.RecordString(files[0], "id")
	permissions := api.PermissionList(ctx, fileID)
	for _, perm := range permissions {
		grantee, _ := driveops.PermissionGrantee(perm)
		fmt.Printf("Permission ID: %s, Grantee: %v, Role: %s\n", driveops.RecordString(perm, "id"), grantee, driveops.PermissionRole(perm))
	}

	// Remove public access from the first file
	step()
	for _, perm := range permissions {
		if grantee, ok := driveops.PermissionGrantee(perm); ok && grantee == driveops.Anyone() {
			api.PermissionDelete(ctx, fileID, driveops.RecordString(perm, "id"))
			fmt.Printf("Deleted: %s\n", driveops.RecordString(perm, "id"))
		}
	}

	// Search by name and continue from the returned page token
	step()
	page := api.FileList(ctx, driveops.FileListParams{DriveID: os.Args[2], Query: "name contains 'report'", PageSize: 5})
	for _, file := range page.Files {
		fmt.Printf("Found: %s\n", driveops.RecordString(file, "name"))
	}
	if page.HasNext() {
		page = api.FileList(ctx, driveops.FileListParams{DriveID: os.Args[2], Query: "name contains 'report'", PageSize: 5, PageToken: page.NextPageToken})
		fmt.Printf("Next page: %d files\n", len(page.Files))
	}
}
