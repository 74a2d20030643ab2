// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-keeper-sdk/internal/crypto"
	"github.com/MKhiriev/go-keeper-sdk/internal/utils"
	"github.com/MKhiriev/go-keeper-sdk/models"
)

// decryptResponse unwraps every record in resp down to plaintext: record
// keys under the app key (or the folder key for foldered records), data
// blobs under the record key, file keys under the record key.
func decryptResponse(resp *models.SecretsResponse, appKey []byte) ([]*models.Record, error) {
	records := make([]*models.Record, 0, len(resp.Records))

	for _, enc := range resp.Records {
		rec, err := decryptRecord(enc, appKey)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", enc.RecordUID, err)
		}
		records = append(records, rec)
	}

	for _, folder := range resp.Folders {
		folderKey, err := unwrapKey(folder.FolderKey, appKey)
		if err != nil {
			return nil, fmt.Errorf("folder %s: %w", folder.FolderUID, err)
		}
		for _, enc := range folder.Records {
			rec, err := decryptRecord(enc, folderKey)
			if err != nil {
				return nil, fmt.Errorf("folder %s record %s: %w", folder.FolderUID, enc.RecordUID, err)
			}
			records = append(records, rec)
		}
	}

	return records, nil
}

func decryptRecord(enc models.EncryptedRecord, wrappingKey []byte) (*models.Record, error) {
	if enc.RecordKey == "" {
		return nil, fmt.Errorf("missing record key")
	}
	recordKey, err := unwrapKey(enc.RecordKey, wrappingKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap record key: %w", err)
	}

	blob, err := utils.Base64URLDecode(enc.Data)
	if err != nil {
		return nil, fmt.Errorf("decode record data: %w", err)
	}
	raw, err := crypto.Decrypt(blob, recordKey)
	if err != nil {
		return nil, fmt.Errorf("decrypt record data: %w", err)
	}

	rec, err := models.NewRecordFromData(enc.RecordUID, recordKey, raw, enc.Revision)
	if err != nil {
		return nil, err
	}

	for _, file := range enc.Files {
		ref, err := decryptFileRef(file, recordKey)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", file.FileUID, err)
		}
		rec.Files = append(rec.Files, ref)
	}

	return rec, nil
}

func decryptFileRef(enc models.EncryptedFile, recordKey []byte) (models.FileRef, error) {
	fileKey, err := unwrapKey(enc.FileKey, recordKey)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("unwrap file key: %w", err)
	}

	blob, err := utils.Base64URLDecode(enc.Data)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("decode file metadata: %w", err)
	}
	raw, err := crypto.Decrypt(blob, fileKey)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("decrypt file metadata: %w", err)
	}

	var meta models.FileData
	if err := json.Unmarshal(raw, &meta); err != nil {
		return models.FileRef{}, fmt.Errorf("unmarshal file metadata: %w", err)
	}

	return models.FileRef{
		UID:      enc.FileUID,
		Name:     meta.Name,
		Title:    meta.Title,
		MimeType: meta.Type,
		Size:     meta.Size,
		FileKey:  fileKey,
		URL:      enc.URL,
	}, nil
}

// unwrapKey base64url-decodes an encrypted key blob and opens it under key.
func unwrapKey(encoded string, key []byte) ([]byte, error) {
	blob, err := utils.Base64URLDecode(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode key blob: %w", err)
	}
	return crypto.Decrypt(blob, key)
}
