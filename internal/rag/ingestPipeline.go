package rag

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/akolanti/GoFaqRag/internal/adapter/utils"
	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
	"github.com/akolanti/GoFaqRag/internal/domain/jobModel"
	"github.com/akolanti/GoFaqRag/internal/rag/extract"
	"github.com/akolanti/GoFaqRag/internal/segment"
)

// processDocumentIngestion runs one uploaded file through the full
// pipeline: extract, metadata, segmentation, chunk dump, embeddings,
// vector upsert. The uploaded temp file is removed on success.
func (s *service) processDocumentIngestion(ctx context.Context, job jobModel.Job) jobModel.Job {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "JobId", job.Id)

	docName := job.JobPayload.IngestFileName
	docPath := job.JobPayload.IngestURL
	log.Debug("Processing document", "filename", docName, "path", docPath)

	job.CurrentStep = jobModel.IngestProcessing
	err := s.vectorDB.CreateCollection(ctx, config.FaqCollectionName)
	if err != nil {
		return s.jobError(job, err, "INGESTION_FAILURE", true)
	}

	job.CurrentStep = jobModel.IngestExtract
	doc, err := extract.ExtractDocument(docPath, docName)
	if err != nil {
		job.Error.Message = "Error extracting document content"
		return s.jobError(job, err, "INGESTION_FAILURE", false)
	}

	job.CurrentStep = jobModel.IngestSegment
	meta := segment.ExtractMetadata(doc)
	chunks := segment.Segment(doc, meta)
	log.Debug("Processing document", "Number of chunks: ", len(chunks))

	now := time.Now()
	for i := range chunks {
		chunks[i].ChunkID = utils.GetNewUUID()
		chunks[i].IngestedAt = now
	}

	if err := segment.SaveChunksToFile(config.ChunkDumpFile, chunks); err != nil {
		//the dump is an inspection aid, losing it never fails a job
		log.Error("Error writing chunk dump", "error", err)
	}

	job.CurrentStep = jobModel.IngestProcessing
	if err := s.batchIngest(ctx, chunks); err != nil {
		return s.jobError(job, err, "INGESTION_FAILURE", true)
	}

	if err := os.Remove(docPath); err != nil {
		log.Error("Error removing file", "error", err)
	}

	job.JobPayload.ChunksIngested = len(chunks)
	return job
}

func (s *service) batchIngest(ctx context.Context, chunks []docModel.Chunk) error {
	isHugeDataSet := len(chunks) > config.HugeDataSetChunkCutoff
	if isHugeDataSet {
		s.logger.Debug("Is a huge dataset")
	}

	for i := 0; i < len(chunks); i += config.EmbeddingBatchSize {
		end := i + config.EmbeddingBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		currentBatch := chunks[i:end]

		texts := make([]string, 0, len(currentBatch))
		for _, c := range currentBatch {
			texts = append(texts, c.Content)
		}

		s.logger.Debug("Starting embedding call", "current batch length", len(currentBatch))
		vectors, err := s.embedder.BatchEmbedding(ctx, texts, isHugeDataSet)
		if err != nil {
			return fmt.Errorf("embedding batch failed: %w", err)
		}

		err = s.vectorDB.UpsertBatch(ctx, config.FaqCollectionName, currentBatch, vectors)
		if err != nil {
			return fmt.Errorf("upserting batch failed: %w", err)
		}
	}

	return nil
}
