package driveops

import (
	"maps"
	"slices"

	"google.golang.org/api/drive/v3"
)

// MapFile projects a Drive file into a Record.
// Fields that are unset on f are omitted. A nil file yields an empty Record.
func MapFile(f *drive.File) *Record {
	r := NewRecord()
	if f == nil {
		return r
	}
	putString(r, "kind", f.Kind)
	putString(r, "id", f.Id)
	putString(r, "name", f.Name)
	putString(r, "mimeType", f.MimeType)
	putString(r, "description", f.Description)
	putBool(r, "starred", f.Starred)
	putBool(r, "trashed", f.Trashed)
	putBool(r, "explicitlyTrashed", f.ExplicitlyTrashed)
	putRecord(r, "trashingUser", MapUser(f.TrashingUser))
	putString(r, "trashedTime", f.TrashedTime)
	putStrings(r, "parents", f.Parents)
	putStringMap(r, "properties", f.Properties)
	putStringMap(r, "appProperties", f.AppProperties)
	putStrings(r, "spaces", f.Spaces)
	putInt(r, "version", f.Version)
	putString(r, "webContentLink", f.WebContentLink)
	putString(r, "webViewLink", f.WebViewLink)
	putString(r, "iconLink", f.IconLink)
	putBool(r, "hasThumbnail", f.HasThumbnail)
	putString(r, "thumbnailLink", f.ThumbnailLink)
	putInt(r, "thumbnailVersion", f.ThumbnailVersion)
	putBool(r, "viewedByMe", f.ViewedByMe)
	putString(r, "viewedByMeTime", f.ViewedByMeTime)
	putString(r, "createdTime", f.CreatedTime)
	putString(r, "modifiedTime", f.ModifiedTime)
	putString(r, "modifiedByMeTime", f.ModifiedByMeTime)
	putBool(r, "modifiedByMe", f.ModifiedByMe)
	putString(r, "sharedWithMeTime", f.SharedWithMeTime)
	putRecord(r, "sharingUser", MapUser(f.SharingUser))
	putRecords(r, "owners", mapAll(f.Owners, MapUser))
	putString(r, "driveId", f.DriveId)
	putString(r, "teamDriveId", f.TeamDriveId)
	putRecord(r, "lastModifyingUser", MapUser(f.LastModifyingUser))
	putBool(r, "shared", f.Shared)
	putBool(r, "ownedByMe", f.OwnedByMe)
	putRecord(r, "capabilities", mapFileCapabilities(f.Capabilities))
	putBool(r, "viewersCanCopyContent", f.ViewersCanCopyContent)
	putBool(r, "copyRequiresWriterPermission", f.CopyRequiresWriterPermission)
	putBool(r, "writersCanShare", f.WritersCanShare)
	putRecords(r, "permissions", mapAll(f.Permissions, MapPermission))
	putStrings(r, "permissionIds", f.PermissionIds)
	putBool(r, "hasAugmentedPermissions", f.HasAugmentedPermissions)
	putBool(r, "inheritedPermissionsDisabled", f.InheritedPermissionsDisabled)
	putString(r, "folderColorRgb", f.FolderColorRgb)
	putString(r, "originalFilename", f.OriginalFilename)
	putString(r, "fullFileExtension", f.FullFileExtension)
	putString(r, "fileExtension", f.FileExtension)
	putString(r, "md5Checksum", f.Md5Checksum)
	putString(r, "sha1Checksum", f.Sha1Checksum)
	putString(r, "sha256Checksum", f.Sha256Checksum)
	putInt(r, "size", f.Size)
	putInt(r, "quotaBytesUsed", f.QuotaBytesUsed)
	putString(r, "headRevisionId", f.HeadRevisionId)
	putRecord(r, "contentHints", mapContentHints(f.ContentHints))
	putRecord(r, "imageMediaMetadata", mapImageMediaMetadata(f.ImageMediaMetadata))
	putRecord(r, "videoMediaMetadata", mapVideoMediaMetadata(f.VideoMediaMetadata))
	putBool(r, "isAppAuthorized", f.IsAppAuthorized)
	putStringMap(r, "exportLinks", f.ExportLinks)
	putRecord(r, "shortcutDetails", mapShortcutDetails(f.ShortcutDetails))
	putRecords(r, "contentRestrictions", mapAll(f.ContentRestrictions, mapContentRestriction))
	putString(r, "resourceKey", f.ResourceKey)
	putRecord(r, "linkShareMetadata", mapLinkShareMetadata(f.LinkShareMetadata))
	putRecord(r, "labelInfo", mapLabelInfo(f.LabelInfo))
	putRecord(r, "downloadRestrictions", mapDownloadRestrictions(f.DownloadRestrictions))
	return r
}

// MapPermission projects a Drive permission into a Record.
// Fields that are unset on p are omitted. A nil permission yields an empty Record.
func MapPermission(p *drive.Permission) *Record {
	r := NewRecord()
	if p == nil {
		return r
	}
	putString(r, "kind", p.Kind)
	putString(r, "id", p.Id)
	putString(r, "type", p.Type)
	putString(r, "emailAddress", p.EmailAddress)
	putString(r, "domain", p.Domain)
	putString(r, "role", p.Role)
	putString(r, "view", p.View)
	putBool(r, "allowFileDiscovery", p.AllowFileDiscovery)
	putString(r, "displayName", p.DisplayName)
	putString(r, "photoLink", p.PhotoLink)
	putString(r, "expirationTime", p.ExpirationTime)
	putRecords(r, "permissionDetails", mapAll(p.PermissionDetails, mapPermissionDetails))
	putRecords(r, "teamDrivePermissionDetails", mapAll(p.TeamDrivePermissionDetails, mapTeamDrivePermissionDetails))
	putBool(r, "deleted", p.Deleted)
	putBool(r, "pendingOwner", p.PendingOwner)
	putBool(r, "inheritedPermissionsDisabled", p.InheritedPermissionsDisabled)
	return r
}

// MapUser projects a Drive user into a Record. It returns nil for a nil user.
func MapUser(u *drive.User) *Record {
	if u == nil {
		return nil
	}
	r := NewRecord()
	putString(r, "kind", u.Kind)
	putString(r, "displayName", u.DisplayName)
	putString(r, "photoLink", u.PhotoLink)
	putBool(r, "me", u.Me)
	putString(r, "permissionId", u.PermissionId)
	putString(r, "emailAddress", u.EmailAddress)
	return r
}

func mapPermissionDetails(d *drive.PermissionPermissionDetails) *Record {
	r := NewRecord()
	putString(r, "permissionType", d.PermissionType)
	putString(r, "role", d.Role)
	putString(r, "inheritedFrom", d.InheritedFrom)
	putBool(r, "inherited", d.Inherited)
	return r
}

func mapTeamDrivePermissionDetails(d *drive.PermissionTeamDrivePermissionDetails) *Record {
	r := NewRecord()
	putString(r, "teamDrivePermissionType", d.TeamDrivePermissionType)
	putString(r, "role", d.Role)
	putString(r, "inheritedFrom", d.InheritedFrom)
	putBool(r, "inherited", d.Inherited)
	return r
}

func mapFileCapabilities(c *drive.FileCapabilities) *Record {
	if c == nil {
		return nil
	}
	r := NewRecord()
	putBool(r, "canAcceptOwnership", c.CanAcceptOwnership)
	putBool(r, "canAddChildren", c.CanAddChildren)
	putBool(r, "canAddFolderFromAnotherDrive", c.CanAddFolderFromAnotherDrive)
	putBool(r, "canAddMyDriveParent", c.CanAddMyDriveParent)
	putBool(r, "canChangeCopyRequiresWriterPermission", c.CanChangeCopyRequiresWriterPermission)
	putBool(r, "canChangeItemDownloadRestriction", c.CanChangeItemDownloadRestriction)
	putBool(r, "canChangeSecurityUpdateEnabled", c.CanChangeSecurityUpdateEnabled)
	putBool(r, "canChangeViewersCanCopyContent", c.CanChangeViewersCanCopyContent)
	putBool(r, "canComment", c.CanComment)
	putBool(r, "canCopy", c.CanCopy)
	putBool(r, "canDelete", c.CanDelete)
	putBool(r, "canDeleteChildren", c.CanDeleteChildren)
	putBool(r, "canDisableInheritedPermissions", c.CanDisableInheritedPermissions)
	putBool(r, "canDownload", c.CanDownload)
	putBool(r, "canEdit", c.CanEdit)
	putBool(r, "canEnableInheritedPermissions", c.CanEnableInheritedPermissions)
	putBool(r, "canListChildren", c.CanListChildren)
	putBool(r, "canModifyContent", c.CanModifyContent)
	putBool(r, "canModifyContentRestriction", c.CanModifyContentRestriction)
	putBool(r, "canModifyEditorContentRestriction", c.CanModifyEditorContentRestriction)
	putBool(r, "canModifyLabels", c.CanModifyLabels)
	putBool(r, "canModifyOwnerContentRestriction", c.CanModifyOwnerContentRestriction)
	putBool(r, "canMoveChildrenOutOfDrive", c.CanMoveChildrenOutOfDrive)
	putBool(r, "canMoveChildrenOutOfTeamDrive", c.CanMoveChildrenOutOfTeamDrive)
	putBool(r, "canMoveChildrenWithinDrive", c.CanMoveChildrenWithinDrive)
	putBool(r, "canMoveChildrenWithinTeamDrive", c.CanMoveChildrenWithinTeamDrive)
	putBool(r, "canMoveItemIntoTeamDrive", c.CanMoveItemIntoTeamDrive)
	putBool(r, "canMoveItemOutOfDrive", c.CanMoveItemOutOfDrive)
	putBool(r, "canMoveItemOutOfTeamDrive", c.CanMoveItemOutOfTeamDrive)
	putBool(r, "canMoveItemWithinDrive", c.CanMoveItemWithinDrive)
	putBool(r, "canMoveItemWithinTeamDrive", c.CanMoveItemWithinTeamDrive)
	putBool(r, "canMoveTeamDriveItem", c.CanMoveTeamDriveItem)
	putBool(r, "canReadDrive", c.CanReadDrive)
	putBool(r, "canReadLabels", c.CanReadLabels)
	putBool(r, "canReadRevisions", c.CanReadRevisions)
	putBool(r, "canReadTeamDrive", c.CanReadTeamDrive)
	putBool(r, "canRemoveChildren", c.CanRemoveChildren)
	putBool(r, "canRemoveContentRestriction", c.CanRemoveContentRestriction)
	putBool(r, "canRemoveMyDriveParent", c.CanRemoveMyDriveParent)
	putBool(r, "canRename", c.CanRename)
	putBool(r, "canShare", c.CanShare)
	putBool(r, "canTrash", c.CanTrash)
	putBool(r, "canTrashChildren", c.CanTrashChildren)
	putBool(r, "canUntrash", c.CanUntrash)
	return r
}

func mapContentHints(h *drive.FileContentHints) *Record {
	if h == nil {
		return nil
	}
	r := NewRecord()
	if h.Thumbnail != nil {
		thumbnail := NewRecord()
		putString(thumbnail, "image", h.Thumbnail.Image)
		putString(thumbnail, "mimeType", h.Thumbnail.MimeType)
		putRecord(r, "thumbnail", thumbnail)
	}
	putString(r, "indexableText", h.IndexableText)
	return r
}

func mapImageMediaMetadata(m *drive.FileImageMediaMetadata) *Record {
	if m == nil {
		return nil
	}
	r := NewRecord()
	putInt(r, "width", m.Width)
	putInt(r, "height", m.Height)
	putInt(r, "rotation", m.Rotation)
	if m.Location != nil {
		location := NewRecord()
		putFloat(location, "latitude", m.Location.Latitude)
		putFloat(location, "longitude", m.Location.Longitude)
		putFloat(location, "altitude", m.Location.Altitude)
		putRecord(r, "location", location)
	}
	putString(r, "time", m.Time)
	putString(r, "cameraMake", m.CameraMake)
	putString(r, "cameraModel", m.CameraModel)
	putFloat(r, "exposureTime", m.ExposureTime)
	putFloat(r, "aperture", m.Aperture)
	putBool(r, "flashUsed", m.FlashUsed)
	putFloat(r, "focalLength", m.FocalLength)
	putInt(r, "isoSpeed", m.IsoSpeed)
	putString(r, "meteringMode", m.MeteringMode)
	putString(r, "sensor", m.Sensor)
	putString(r, "exposureMode", m.ExposureMode)
	putString(r, "colorSpace", m.ColorSpace)
	putString(r, "whiteBalance", m.WhiteBalance)
	putFloat(r, "exposureBias", m.ExposureBias)
	putFloat(r, "maxApertureValue", m.MaxApertureValue)
	putInt(r, "subjectDistance", m.SubjectDistance)
	putString(r, "lens", m.Lens)
	return r
}

func mapVideoMediaMetadata(m *drive.FileVideoMediaMetadata) *Record {
	if m == nil {
		return nil
	}
	r := NewRecord()
	putInt(r, "width", m.Width)
	putInt(r, "height", m.Height)
	putInt(r, "durationMillis", m.DurationMillis)
	return r
}

func mapShortcutDetails(d *drive.FileShortcutDetails) *Record {
	if d == nil {
		return nil
	}
	r := NewRecord()
	putString(r, "targetId", d.TargetId)
	putString(r, "targetMimeType", d.TargetMimeType)
	putString(r, "targetResourceKey", d.TargetResourceKey)
	return r
}

func mapContentRestriction(c *drive.ContentRestriction) *Record {
	r := NewRecord()
	putBool(r, "readOnly", c.ReadOnly)
	putString(r, "reason", c.Reason)
	putString(r, "type", c.Type)
	putRecord(r, "restrictingUser", MapUser(c.RestrictingUser))
	putString(r, "restrictionTime", c.RestrictionTime)
	putBool(r, "ownerRestricted", c.OwnerRestricted)
	putBool(r, "systemRestricted", c.SystemRestricted)
	return r
}

func mapLinkShareMetadata(m *drive.FileLinkShareMetadata) *Record {
	if m == nil {
		return nil
	}
	r := NewRecord()
	putBool(r, "securityUpdateEligible", m.SecurityUpdateEligible)
	putBool(r, "securityUpdateEnabled", m.SecurityUpdateEnabled)
	return r
}

func mapLabelInfo(l *drive.FileLabelInfo) *Record {
	if l == nil {
		return nil
	}
	r := NewRecord()
	putRecords(r, "labels", mapAll(l.Labels, mapLabel))
	return r
}

func mapLabel(l *drive.Label) *Record {
	r := NewRecord()
	putString(r, "kind", l.Kind)
	putString(r, "id", l.Id)
	putString(r, "revisionId", l.RevisionId)
	if len(l.Fields) != 0 {
		fields := NewRecord()
		for _, id := range slices.Sorted(maps.Keys(l.Fields)) {
			field := l.Fields[id]
			putRecord(fields, id, mapLabelField(&field))
		}
		putRecord(r, "fields", fields)
	}
	return r
}

func mapLabelField(f *drive.LabelField) *Record {
	r := NewRecord()
	putString(r, "kind", f.Kind)
	putString(r, "id", f.Id)
	putString(r, "valueType", f.ValueType)
	putStrings(r, "dateString", f.DateString)
	putInts(r, "integer", f.Integer)
	putStrings(r, "selection", f.Selection)
	putStrings(r, "text", f.Text)
	putRecords(r, "user", mapAll(f.User, MapUser))
	return r
}

func mapDownloadRestrictions(m *drive.DownloadRestrictionsMetadata) *Record {
	if m == nil {
		return nil
	}
	r := NewRecord()
	putRecord(r, "itemDownloadRestriction", mapDownloadRestriction(m.ItemDownloadRestriction))
	putRecord(r, "effectiveDownloadRestrictionWithContext", mapDownloadRestriction(m.EffectiveDownloadRestrictionWithContext))
	return r
}

func mapDownloadRestriction(d *drive.DownloadRestriction) *Record {
	if d == nil {
		return nil
	}
	r := NewRecord()
	putBool(r, "restrictedForReaders", d.RestrictedForReaders)
	putBool(r, "restrictedForWriters", d.RestrictedForWriters)
	return r
}
