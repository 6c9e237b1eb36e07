package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/priyansh/legal-doc-agent/internal/db"
	"github.com/priyansh/legal-doc-agent/internal/service"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// GenerateRequest is the JSON body for POST /api/v1/documents/generate.
// An uploaded template travels base64-encoded to keep the endpoint plain JSON.
type GenerateRequest struct {
	DocType  string `json:"doc_type" validate:"required"`
	Language string `json:"language" validate:"required"`
	Scenario string `json:"scenario" validate:"required,min=10"`

	TemplateBase64   string `json:"template_base64,omitempty"`
	TemplateFilename string `json:"template_filename,omitempty" validate:"omitempty,endswith=.docx"`
}

// GenerateResponse is the success body for document generation.
type GenerateResponse struct {
	Success     bool                      `json:"success"`
	DownloadURL string                    `json:"download_url"`
	RunID       string                    `json:"run_id,omitempty"`
	Metadata    *types.GenerationMetadata `json:"metadata"`
}

// ConfigResponse lists the supported document types and languages.
type ConfigResponse struct {
	DocumentTypes []types.DocumentCategory `json:"document_types"`
	Languages     map[string]string        `json:"languages"`
}

// FieldsResponse lists the required metadata fields for a document type.
type FieldsResponse struct {
	DocType        string   `json:"doc_type"`
	RequiredFields []string `json:"required_fields"`
	OptionalFields []string `json:"optional_fields"`
}

// handleGetConfig returns supported document types and languages.
func (s *Server) handleGetConfig(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, ConfigResponse{
		DocumentTypes: service.DocumentTypes(),
		Languages:     service.Languages(),
	})
}

// handleGetFields returns the required fields for a document type.
func (s *Server) handleGetFields(w http.ResponseWriter, r *http.Request) {
	docType := r.PathValue("doc_type")

	fields, err := s.svc.RequiredFields(docType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, FieldsResponse{
		DocType:        docType,
		RequiredFields: fields,
		OptionalFields: []string{},
	})
}

// handleGenerate runs the full generation pipeline synchronously and returns
// a download URL for the produced document.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	var templateContent []byte
	if req.TemplateBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.TemplateBase64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "template_base64 is not valid base64")
			return
		}
		templateContent = decoded
	}

	runID := s.recordRunStart(r.Context(), req)

	result, err := s.svc.Generate(r.Context(), service.Request{
		DocType:          req.DocType,
		Language:         req.Language,
		Scenario:         req.Scenario,
		TemplateContent:  templateContent,
		TemplateFilename: req.TemplateFilename,
	})
	if err != nil {
		s.recordRunEnd(r.Context(), runID, "failed", "", nil)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.recordRunEnd(r.Context(), runID, "completed", result.Metadata.FinalFilename, result.Metadata)

	resp := GenerateResponse{
		Success:     true,
		DownloadURL: "/downloads/" + result.Metadata.FinalFilename,
		Metadata:    result.Metadata,
	}
	if runID != uuid.Nil {
		resp.RunID = runID.String()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleDownload serves a generated document from the output directory.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(r.PathValue("filename"))
	path := filepath.Join(s.outputDir, filename)

	if _, err := os.Stat(path); err != nil {
		notFound := &ErrFileNotFound{Filename: filename}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	http.ServeFile(w, r, path)
}

// handleListRuns returns recent run records.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotImplemented, "run records require a database")
		return
	}

	filters := db.RunFilters{
		DocType: r.URL.Query().Get("doc_type"),
		Status:  r.URL.Query().Get("status"),
	}
	runs, err := s.db.ListRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []db.Run{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one run record.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleGetRunMetadata returns the stored generation metadata for a run.
func (s *Server) handleGetRunMetadata(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}

	metadata, err := s.db.GetMetadata(r.Context(), run.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if metadata == nil {
		notFound := &ErrRunNotFound{ID: run.ID.String()}
		s.errorResponse(w, HTTPStatus(notFound), "no metadata for run "+run.ID.String())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(metadata); err != nil {
		log.Printf("Error writing metadata response: %v", err)
	}
}

// handleDeleteRun deletes a run record.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteRun(r.Context(), run.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) lookupRun(w http.ResponseWriter, r *http.Request) (*db.Run, bool) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotImplemented, "run records require a database")
		return nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run id")
		return nil, false
	}

	run, err := s.db.GetRun(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if run == nil {
		notFound := &ErrRunNotFound{ID: id.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return run, true
}

// recordRunStart creates a run record when a database is configured. Record
// keeping never blocks generation; failures are logged and ignored.
func (s *Server) recordRunStart(ctx context.Context, req GenerateRequest) uuid.UUID {
	if s.db == nil {
		return uuid.Nil
	}
	id, err := s.db.CreateRun(ctx, req.DocType, req.Language, req.Scenario)
	if err != nil {
		log.Printf("Could not create run record: %v", err)
		return uuid.Nil
	}
	return id
}

func (s *Server) recordRunEnd(ctx context.Context, runID uuid.UUID, status, outputFile string, metadata *types.GenerationMetadata) {
	if s.db == nil || runID == uuid.Nil {
		return
	}
	if err := s.db.CompleteRun(ctx, runID, status, outputFile); err != nil {
		log.Printf("Could not complete run record: %v", err)
	}
	if metadata != nil {
		if err := s.db.SaveMetadata(ctx, runID, metadata); err != nil {
			log.Printf("Could not save run metadata: %v", err)
		}
	}
}

// validationMessage flattens validator errors into a readable message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
